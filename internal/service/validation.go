package service

import (
	"strings"
	"time"

	"github.com/BharAnu2109/Cricket/internal/model"
	"github.com/BharAnu2109/Cricket/internal/repository"
)

const maxNameLength = 50

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

// normalizeDTO trims free-text fields and folds enum literals to upper
// case so validation and persistence see canonical values.
func normalizeDTO(dto model.PlayerDTO) model.PlayerDTO {
	dto.FirstName = strings.TrimSpace(dto.FirstName)
	dto.LastName = strings.TrimSpace(dto.LastName)
	dto.Country = strings.TrimSpace(dto.Country)
	dto.PlayingRole = model.PlayingRole(strings.ToUpper(strings.TrimSpace(string(dto.PlayingRole))))
	dto.BattingStyle = model.BattingStyle(strings.ToUpper(strings.TrimSpace(string(dto.BattingStyle))))
	dto.BowlingStyle = model.BowlingStyle(strings.ToUpper(strings.TrimSpace(string(dto.BowlingStyle))))
	return dto
}

// validateDTO checks the normalized transfer object and reports every
// violation at once. Enum fields are optional; when present they must be
// members of their closed sets.
func validateDTO(dto model.PlayerDTO) []FieldError {
	var ferrs []FieldError
	ferrs = appendNameError(ferrs, "first_name", dto.FirstName)
	ferrs = appendNameError(ferrs, "last_name", dto.LastName)
	ferrs = appendNameError(ferrs, "country", dto.Country)
	if dto.DateOfBirth != nil && !dto.DateOfBirth.Before(time.Now()) {
		ferrs = append(ferrs, FieldError{Field: "date_of_birth", Message: "must be in the past"})
	}
	if dto.PlayingRole != "" && !dto.PlayingRole.Valid() {
		ferrs = append(ferrs, FieldError{Field: "playing_role", Message: "must be one of BATSMAN, BOWLER, ALL_ROUNDER, WICKET_KEEPER"})
	}
	if dto.BattingStyle != "" && !dto.BattingStyle.Valid() {
		ferrs = append(ferrs, FieldError{Field: "batting_style", Message: "must be one of RIGHT_HANDED, LEFT_HANDED"})
	}
	if dto.BowlingStyle != "" && !dto.BowlingStyle.Valid() {
		ferrs = append(ferrs, FieldError{Field: "bowling_style", Message: "must be a recognized bowling style"})
	}
	if dto.JerseyNumber != nil && (*dto.JerseyNumber < 0 || *dto.JerseyNumber > 999) {
		ferrs = append(ferrs, FieldError{Field: "jersey_number", Message: "must be between 0 and 999"})
	}
	return ferrs
}

func appendNameError(ferrs []FieldError, field, value string) []FieldError {
	if value == "" {
		return append(ferrs, FieldError{Field: field, Message: "must not be empty"})
	}
	if ln := len([]rune(value)); ln > maxNameLength {
		return append(ferrs, FieldError{Field: field, Message: "length must be <= 50"})
	}
	return ferrs
}
