package services

import (
	"context"
	"strings"

	"schooladmin/internal/domain"
)

// ProfileService answers whether a school has filled in the profile fields
// that bookings, pricing and holidays depend on.
type ProfileService struct {
	Schools schoolReader
}

type ProfileStatus struct {
	SchoolID int64    `json:"schoolId"`
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing"`
}

func (s ProfileService) Status(ctx context.Context, schoolID int64) (ProfileStatus, error) {
	school, err := s.Schools.Get(ctx, schoolID)
	if err != nil {
		return ProfileStatus{}, err
	}
	missing := school.MissingProfileFields()
	if missing == nil {
		missing = []string{}
	}
	return ProfileStatus{SchoolID: schoolID, Complete: len(missing) == 0, Missing: missing}, nil
}

// RequireComplete returns a ForbiddenError naming the missing fields when
// the profile is incomplete.
func (s ProfileService) RequireComplete(ctx context.Context, schoolID int64) error {
	st, err := s.Status(ctx, schoolID)
	if err != nil {
		return err
	}
	if !st.Complete {
		return domain.ForbiddenError{Msg: "complete the school profile first: missing " + strings.Join(st.Missing, ", ")}
	}
	return nil
}
