package twitchinfra

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nicklaw5/helix/v2"

	"ctmBot/internal/domain"
)

// Helix accepts at most 100 logins per Get Users request.
const maxLoginsPerRequest = 100

// usersAPI is the part of *helix.Client the directory calls.
type usersAPI interface {
	GetUsers(params *helix.UsersParams) (*helix.UsersResponse, error)
}

type HelixChannelDirectory struct {
	client usersAPI
}

// clientID: the Twitch application id
// accessToken: an app or user access token
func NewHelixChannelDirectory(clientID, accessToken string) (*HelixChannelDirectory, error) {
	client, err := helix.NewClient(&helix.Options{
		ClientID:       clientID,
		AppAccessToken: accessToken,
	})
	if err != nil {
		return nil, fmt.Errorf("helix: NewClient: %w", err)
	}

	return &HelixChannelDirectory{client: client}, nil
}

// LookupChannels resolves logins to broadcaster ids. Unknown logins are left out.
func (d *HelixChannelDirectory) LookupChannels(logins []string) ([]domain.TwitchChannel, error) {
	var out []domain.TwitchChannel
	for start := 0; start < len(logins); start += maxLoginsPerRequest {
		end := min(start+maxLoginsPerRequest, len(logins))

		resp, err := d.client.GetUsers(&helix.UsersParams{Logins: logins[start:end]})
		if err != nil {
			return nil, fmt.Errorf("helix: GetUsers: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("helix: GetUsers failed (%d: %s) %s",
				resp.StatusCode, resp.Error, resp.ErrorMessage)
		}

		for _, u := range resp.Data.Users {
			out = append(out, domain.TwitchChannel{
				Login:         strings.ToLower(u.Login),
				BroadcasterID: u.ID,
				DisplayName:   u.DisplayName,
			})
		}
	}
	return out, nil
}
