package model

import "strings"

// PlayingRole is the closed set of roles a player can fill in a squad.
type PlayingRole string

const (
	RoleBatsman      PlayingRole = "BATSMAN"
	RoleBowler       PlayingRole = "BOWLER"
	RoleAllRounder   PlayingRole = "ALL_ROUNDER"
	RoleWicketKeeper PlayingRole = "WICKET_KEEPER"
)

// PlayingRoles lists all valid roles in declaration order.
func PlayingRoles() []PlayingRole {
	return []PlayingRole{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}
}

// ParsePlayingRole normalizes and validates a role literal.
func ParsePlayingRole(s string) (PlayingRole, bool) {
	r := PlayingRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

func (r PlayingRole) Valid() bool {
	switch r {
	case RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper:
		return true
	}
	return false
}

// BattingStyle distinguishes which hand a player bats with.
type BattingStyle string

const (
	BattingRightHanded BattingStyle = "RIGHT_HANDED"
	BattingLeftHanded  BattingStyle = "LEFT_HANDED"
)

func ParseBattingStyle(s string) (BattingStyle, bool) {
	b := BattingStyle(strings.ToUpper(strings.TrimSpace(s)))
	return b, b.Valid()
}

func (b BattingStyle) Valid() bool {
	switch b {
	case BattingRightHanded, BattingLeftHanded:
		return true
	}
	return false
}

// BowlingStyle is the closed set of recognized bowling styles.
type BowlingStyle string

const (
	BowlingRightArmFast        BowlingStyle = "RIGHT_ARM_FAST"
	BowlingLeftArmFast         BowlingStyle = "LEFT_ARM_FAST"
	BowlingRightArmMedium      BowlingStyle = "RIGHT_ARM_MEDIUM"
	BowlingLeftArmMedium       BowlingStyle = "LEFT_ARM_MEDIUM"
	BowlingRightArmSpin        BowlingStyle = "RIGHT_ARM_SPIN"
	BowlingLeftArmSpin         BowlingStyle = "LEFT_ARM_SPIN"
	BowlingSlowLeftArmOrthodox BowlingStyle = "SLOW_LEFT_ARM_ORTHODOX"
	BowlingLegSpin             BowlingStyle = "LEG_SPIN"
	BowlingOffSpin             BowlingStyle = "OFF_SPIN"
)

func ParseBowlingStyle(s string) (BowlingStyle, bool) {
	b := BowlingStyle(strings.ToUpper(strings.TrimSpace(s)))
	return b, b.Valid()
}

func (b BowlingStyle) Valid() bool {
	switch b {
	case BowlingRightArmFast, BowlingLeftArmFast, BowlingRightArmMedium,
		BowlingLeftArmMedium, BowlingRightArmSpin, BowlingLeftArmSpin,
		BowlingSlowLeftArmOrthodox, BowlingLegSpin, BowlingOffSpin:
		return true
	}
	return false
}
