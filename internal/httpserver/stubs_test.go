package httpserver

import (
	"context"

	"records-api/internal/domain"
	usersvc "records-api/internal/service/user"
)

type stubComposerService struct {
	composers []domain.Composer
	composer  *domain.Composer
	err       error
	getErr    error
	created   *domain.Composer
	updated   *domain.Composer
}

func (s *stubComposerService) List(context.Context) ([]domain.Composer, error) {
	return s.composers, s.err
}

func (s *stubComposerService) Get(context.Context, string) (*domain.Composer, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.composer, s.err
}

func (s *stubComposerService) Create(_ context.Context, c domain.Composer) (*domain.Composer, error) {
	if s.err != nil {
		return nil, s.err
	}
	c.ID = "c-1"
	s.created = &c
	return &c, nil
}

func (s *stubComposerService) Update(_ context.Context, id string, c domain.Composer) (*domain.Composer, error) {
	if s.err != nil {
		return nil, s.err
	}
	c.ID = id
	s.updated = &c
	return &c, nil
}

func (s *stubComposerService) Delete(context.Context, string) (*domain.Composer, error) {
	return s.composer, s.err
}

type stubTeamService struct {
	team    *domain.Team
	err     error
	getErr  error
	added   *domain.Player
	created *domain.Team
}

func (s *stubTeamService) List(context.Context) ([]domain.Team, error) {
	if s.team == nil {
		return []domain.Team{}, s.err
	}
	return []domain.Team{*s.team}, s.err
}

func (s *stubTeamService) Get(context.Context, string) (*domain.Team, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.team, nil
}

func (s *stubTeamService) Create(_ context.Context, t domain.Team) (*domain.Team, error) {
	if s.err != nil {
		return nil, s.err
	}
	t.ID = "t-1"
	s.created = &t
	return &t, nil
}

func (s *stubTeamService) Players(context.Context, string) ([]domain.Player, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.team.Players, s.err
}

func (s *stubTeamService) AddPlayer(_ context.Context, _ string, p domain.Player) (*domain.Team, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.err != nil {
		return nil, s.err
	}
	s.added = &p
	t := *s.team
	t.Players = append(append([]domain.Player{}, t.Players...), p)
	return &t, nil
}

func (s *stubTeamService) Delete(context.Context, string) (*domain.Team, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.team, s.err
}

type stubUserService struct {
	user      *domain.User
	signupErr error
	loginErr  error
	signedUp  *usersvc.SignupInput
	taken     map[string]bool
}

func (s *stubUserService) CheckAvailable(_ context.Context, userName string) error {
	if s.taken[userName] {
		return domain.ErrUserNameTaken
	}
	return nil
}

func (s *stubUserService) Signup(_ context.Context, in usersvc.SignupInput) (*domain.User, error) {
	s.signedUp = &in
	return s.user, s.signupErr
}

func (s *stubUserService) Login(context.Context, string, string) (*domain.User, error) {
	return s.user, s.loginErr
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
