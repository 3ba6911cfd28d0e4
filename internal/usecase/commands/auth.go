package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ctmBot/internal/domain"
)

const (
	AuthWordExpire   = 2 * time.Hour
	AuthWordCooldown = 48 * time.Hour

	authWordPurpose     = "authword"
	authCooldownPurpose = "authcooldown"
)

const authHelpText = "Qualification authentication is a new feature of this bot. " +
	"To generate a random 6-letter auth word, type `!authword`. " +
	"That word will be associated with your account for 2 hours. " +
	"Calling `!authword` again on any platform will return the same " +
	"word. It is used for authenticating qualification attempts. " +
	"You should **put the word you're assigned on the leaderboard** " +
	"when you complete your first game over 5000 points. This proves " +
	"that you're not playing a pre-recorded VOD.\n" +
	"**NOTE:** After invoking this command, you will be barred from " +
	"doing so for 48 hours. If the qualification attempt falls " +
	"through due to extenuating circumstances, you will need to wait " +
	"two full days before making another attempt."

// AuthWordCommand hands out a short-lived verification word. While the word lives,
// repeat calls return it unchanged; once it expires, a longer suppression window
// blocks generating a new one.
type AuthWordCommand struct {
	cache domain.Cache
	words func() string
}

func NewAuthWordCommand(cache domain.Cache, words func() string) *AuthWordCommand {
	return &AuthWordCommand{cache: cache, words: words}
}

func (c *AuthWordCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	uid := cmdCtx.UserID()
	wordKey := authWordPurpose + "." + uid
	cooldownKey := authCooldownPurpose + "." + uid

	word, err := c.cache.Get(ctx, wordKey)
	if err != nil {
		return fmt.Errorf("authword: get word: %w", err)
	}
	if w, ok := word.Get(); ok {
		left, err := c.remaining(ctx, wordKey)
		if err != nil {
			return err
		}
		return cmdCtx.SendMessage(ctx, authWordReply(w, left))
	}

	cooldown, err := c.cache.Get(ctx, cooldownKey)
	if err != nil {
		return fmt.Errorf("authword: get cooldown: %w", err)
	}
	if cooldown.IsPresent() {
		left, err := c.remaining(ctx, cooldownKey)
		if err != nil {
			return err
		}
		return cmdCtx.SendMessage(ctx, "Your authword expired. Try again in: "+FormatRemaining(left))
	}

	fresh := c.words()
	if err := c.cache.Set(ctx, wordKey, fresh, AuthWordExpire); err != nil {
		return fmt.Errorf("authword: set word: %w", err)
	}
	if err := c.cache.Set(ctx, cooldownKey, cooldownSentinel, AuthWordCooldown); err != nil {
		return fmt.Errorf("authword: set cooldown: %w", err)
	}

	left, err := c.remaining(ctx, wordKey)
	if err != nil {
		return err
	}
	return cmdCtx.SendMessage(ctx, authWordReply(fresh, left))
}

func (c *AuthWordCommand) remaining(ctx context.Context, key string) (time.Duration, error) {
	left, err := c.cache.TTL(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("authword: ttl: %w", err)
	}
	return left.OrElse(0), nil
}

func authWordReply(word string, left time.Duration) string {
	return fmt.Sprintf("Your qualification authword is: %s. Expires in: %s", strings.ToUpper(word), FormatRemaining(left))
}

// FormatRemaining renders whole seconds as "H:MM:SS", prefixed with "N day(s), " past a day.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	days := secs / 86400
	secs %= 86400

	clock := fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	switch {
	case days == 1:
		return "1 day, " + clock
	case days > 1:
		return fmt.Sprintf("%d days, %s", days, clock)
	default:
		return clock
	}
}
