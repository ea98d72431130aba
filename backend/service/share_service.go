package service

import (
	"strings"

	"packlist/backend/common"
	"packlist/backend/model"
)

// IssueShareLink mints a new share token for a checklist the caller owns. The
// lookup is owner-scoped, so issuing against an unowned or unknown id answers
// not-found. Each call mints a fresh, independent token; outstanding tokens
// for the same checklist keep working.
func IssueShareLink(checklistID int64, ownerID int64, lang string) (*model.ShareLink, string, error) {
	checklist, err := model.GetChecklistByIdAndOwner(checklistID, ownerID, lang)
	if err != nil {
		return nil, "", err
	}

	link := model.ShareLink{
		ChecklistId: checklist.Id,
		Token:       common.GetUUID(),
	}
	if err := link.Insert(); err != nil {
		return nil, "", err
	}
	return &link, ShareURL(link.Token), nil
}

// ShareURL builds the public URL for a token from the configured server
// address option.
func ShareURL(token string) string {
	base := strings.TrimSuffix(model.GetOption("ServerAddress"), "/")
	return base + "/share/" + token
}

// ResolveShareToken maps a token to the checklist id it grants access to.
func ResolveShareToken(token string, lang string) (int64, error) {
	link, err := model.GetShareLinkByToken(token, lang)
	if err != nil {
		return 0, err
	}
	return link.ChecklistId, nil
}
