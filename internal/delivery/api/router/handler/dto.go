package handler

import (
	"time"

	"carvalue/internal/domain/entity"
)

// UserResponse is the public view of an account. The credential never leaves the service.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{ID: user.ID.String(), Email: user.Email}
}

func newUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// ReportResponse is the public view of a report.
type ReportResponse struct {
	ID        string    `json:"id"`
	Price     int       `json:"price"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Lng       float64   `json:"lng"`
	Lat       float64   `json:"lat"`
	Mileage   int       `json:"mileage"`
	Approved  bool      `json:"approved"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newReportResponse(report *entity.Report) ReportResponse {
	return ReportResponse{
		ID:        report.ID.String(),
		Price:     report.Price,
		Make:      report.Make,
		Model:     report.Model,
		Year:      report.Year,
		Lng:       report.Lng,
		Lat:       report.Lat,
		Mileage:   report.Mileage,
		Approved:  report.Approved,
		UserID:    report.UserID.String(),
		CreatedAt: report.CreatedAt,
	}
}

// EstimateResponse carries a null price when nothing comparable was found.
type EstimateResponse struct {
	Price      *float64 `json:"price"`
	SampleSize int      `json:"sampleSize"`
}
