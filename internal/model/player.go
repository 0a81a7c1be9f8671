// Package model contains domain entities and DTOs used across layers.
// Kept lean and focused on data shapes without behavior.
package model

import "time"

// Player represents a cricket player row as persisted in the players table.
type Player struct {
	ID           int64        `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	DateOfBirth  *Date        `json:"date_of_birth,omitempty"`
	Country      string       `json:"country"`
	PlayingRole  PlayingRole  `json:"playing_role"`
	BattingStyle BattingStyle `json:"batting_style"`
	BowlingStyle BowlingStyle `json:"bowling_style"`
	JerseyNumber *int         `json:"jersey_number,omitempty"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FullName joins first and last name for display purposes.
func (p Player) FullName() string { return p.FirstName + " " + p.LastName }

// PlayerDTO is the wire representation of a player.
// ID is server-assigned: ignored on create, taken from the path on update.
// IsActive is a pointer so an absent flag is distinguishable from false;
// an absent flag never overwrites the stored value.
type PlayerDTO struct {
	ID           int64        `json:"id,omitempty"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	DateOfBirth  *Date        `json:"date_of_birth,omitempty"`
	Country      string       `json:"country"`
	PlayingRole  PlayingRole  `json:"playing_role"`
	BattingStyle BattingStyle `json:"batting_style"`
	BowlingStyle BowlingStyle `json:"bowling_style"`
	JerseyNumber *int         `json:"jersey_number,omitempty"`
	IsActive     *bool        `json:"is_active,omitempty"`
}
