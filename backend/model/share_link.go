package model

import (
	"time"

	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
)

// ShareLink grants anonymous, scoped access to one checklist subtree. Token is
// generated once and never mutated; several outstanding links may point at the
// same checklist. There is no expiry and no revocation endpoint: a link dies
// only with its checklist.
type ShareLink struct {
	Id          int64     `json:"id" gorm:"primaryKey"`
	ChecklistId int64     `json:"checklist_id" gorm:"index;not null"`
	Token       string    `json:"token" gorm:"uniqueIndex;size:64;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (link *ShareLink) Insert() error {
	return DB.Create(link).Error
}

// GetShareLinkByToken resolves a token to its link row. Unknown tokens are
// not-found, same as any other unresolvable target.
func GetShareLinkByToken(token string, lang string) (*ShareLink, error) {
	var link ShareLink
	if err := DB.Where("token = ?", token).First(&link).Error; err != nil {
		return nil, i18n.Wrap(err, pkerrors.ErrShareNotFound, lang)
	}
	return &link, nil
}
