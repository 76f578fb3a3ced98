package auth

import "context"

// AuthService is the identity collaborator: it resolves credentials to a
// token carrying {user_id, employee_id, role} claims that the attendance
// endpoints consume.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error)
	Me(ctx context.Context) (MeResponse, error)
}
