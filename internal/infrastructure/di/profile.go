package di

import (
	profilecmd "github.com/Hiro-mackay/gc-profile/internal/usecase/profile/command"
	profileqry "github.com/Hiro-mackay/gc-profile/internal/usecase/profile/query"
)

// ProfileUseCases はProfile関連のUseCaseを保持します
type ProfileUseCases struct {
	// Queries
	GetProfile *profileqry.GetProfileQuery

	// Commands
	CreateProfile *profilecmd.CreateProfileCommand
}

// NewProfileUseCases は新しいProfileUseCasesを作成します
func NewProfileUseCases(c *Container) *ProfileUseCases {
	return &ProfileUseCases{
		// Queries
		GetProfile: profileqry.NewGetProfileQuery(
			c.UserProfileRepo,
			c.UserRepo,
			c.AuthzService,
		),

		// Commands
		CreateProfile: profilecmd.NewCreateProfileCommand(
			c.UserRepo,
			c.UserProfileRepo,
			c.TxManager,
			c.AuthzService,
			c.AvatarStorage,
			c.AvatarProcessor,
		),
	}
}
