package service

import (
	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/model"
)

// PrincipalKind tags the two admission paths plus the anonymous default.
type PrincipalKind int

const (
	PrincipalAnonymous PrincipalKind = iota
	// PrincipalOwner is an authenticated user; admission compares the
	// target's transitive checklist owner against UserID.
	PrincipalOwner
	// PrincipalTokenHolder presented a valid share token; admission is
	// limited to the single checklist the token resolves to.
	PrincipalTokenHolder
)

// Operation enumerates the actions the access policy rules on.
type Operation int

const (
	// OpReadTree covers every read of a checklist or its descendants.
	OpReadTree Operation = iota
	// OpMutateTree covers create/update/delete of checklists, categories
	// and items.
	OpMutateTree
	// OpAttachFile covers uploading a file to a category or item. It is the
	// one write surface open to share recipients.
	OpAttachFile
	// OpDetachFile covers deleting a file reference row.
	OpDetachFile
	// OpClone creates an independent copy of a reachable checklist.
	OpClone
	// OpIssueShare mints a new share token for an owned checklist.
	OpIssueShare
)

// Principal is the resolved acting identity of a request, a tagged variant:
// exactly one of UserID (owner) or ChecklistID (token holder) is meaningful.
type Principal struct {
	Kind        PrincipalKind
	UserID      int64
	ChecklistID int64
}

func OwnerPrincipal(userID int64) Principal {
	return Principal{Kind: PrincipalOwner, UserID: userID}
}

func TokenPrincipal(checklistID int64) Principal {
	return Principal{Kind: PrincipalTokenHolder, ChecklistID: checklistID}
}

// capabilities is the per-kind allowed-operations table. Permission checks
// live here rather than scattered across handlers; routes only decide which
// principal resolution runs.
var capabilities = map[PrincipalKind]map[Operation]bool{
	PrincipalOwner: {
		OpReadTree:   true,
		OpMutateTree: true,
		OpAttachFile: true,
		OpDetachFile: true,
		OpClone:      true,
		OpIssueShare: true,
	},
	PrincipalTokenHolder: {
		OpReadTree:   true,
		OpAttachFile: true,
		OpClone:      true,
	},
}

// Can reports whether the principal's kind admits the operation at all.
// Target reachability is checked separately by ResolveChecklist.
func (p Principal) Can(op Operation) bool {
	return capabilities[p.Kind][op]
}

// ResolveChecklist admits the principal to a target checklist or answers
// not-found. Owner lookups are scoped to the owner's set and token holders
// only ever reach their single checklist, so unowned, unshared and
// nonexistent ids are indistinguishable to the caller.
func (p Principal) ResolveChecklist(checklistID int64, lang string) (*model.Checklist, error) {
	switch p.Kind {
	case PrincipalOwner:
		return model.GetChecklistByIdAndOwner(checklistID, p.UserID, lang)
	case PrincipalTokenHolder:
		if checklistID != p.ChecklistID {
			return nil, notFoundChecklist(lang)
		}
		return model.GetChecklistDeep(checklistID, lang)
	default:
		return nil, notFoundChecklist(lang)
	}
}

func notFoundChecklist(lang string) error {
	return i18n.New(pkerrors.ErrChecklistNotFound, lang)
}
