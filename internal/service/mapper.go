package service

import "github.com/BharAnu2109/Cricket/internal/model"

// applyDTO copies every externally settable field from the transfer object
// onto the entity. ID is never touched: identity is server-assigned. An
// absent IsActive preserves the entity's current flag, which matters on
// update: a payload without the flag must not flip an active record.
func applyDTO(p *model.Player, dto model.PlayerDTO) {
	p.FirstName = dto.FirstName
	p.LastName = dto.LastName
	p.DateOfBirth = dto.DateOfBirth
	p.Country = dto.Country
	p.PlayingRole = dto.PlayingRole
	p.BattingStyle = dto.BattingStyle
	p.BowlingStyle = dto.BowlingStyle
	p.JerseyNumber = dto.JerseyNumber
	if dto.IsActive != nil {
		p.IsActive = *dto.IsActive
	}
}

// toEntity builds a fresh entity from a transfer object. New records are
// active unless the payload says otherwise.
func toEntity(dto model.PlayerDTO) model.Player {
	p := model.Player{IsActive: true}
	applyDTO(&p, dto)
	return p
}

// toDTO copies the persisted record verbatim, id included.
func toDTO(p model.Player) model.PlayerDTO {
	active := p.IsActive
	return model.PlayerDTO{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		DateOfBirth:  p.DateOfBirth,
		Country:      p.Country,
		PlayingRole:  p.PlayingRole,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		JerseyNumber: p.JerseyNumber,
		IsActive:     &active,
	}
}

func toDTOs(players []model.Player) []model.PlayerDTO {
	out := make([]model.PlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toDTO(p))
	}
	return out
}
