package service

import (
	"testing"

	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities_Owner(t *testing.T) {
	p := OwnerPrincipal(1)
	assert.True(t, p.Can(OpReadTree))
	assert.True(t, p.Can(OpMutateTree))
	assert.True(t, p.Can(OpAttachFile))
	assert.True(t, p.Can(OpDetachFile))
	assert.True(t, p.Can(OpClone))
	assert.True(t, p.Can(OpIssueShare))
}

func TestCapabilities_TokenHolder(t *testing.T) {
	p := TokenPrincipal(1)
	assert.True(t, p.Can(OpReadTree))
	assert.True(t, p.Can(OpAttachFile))
	assert.True(t, p.Can(OpClone))

	assert.False(t, p.Can(OpMutateTree))
	assert.False(t, p.Can(OpDetachFile))
	assert.False(t, p.Can(OpIssueShare))
}

func TestCapabilities_Anonymous(t *testing.T) {
	p := Principal{}
	assert.False(t, p.Can(OpReadTree))
	assert.False(t, p.Can(OpMutateTree))
	assert.False(t, p.Can(OpAttachFile))
	assert.False(t, p.Can(OpClone))
	assert.False(t, p.Can(OpIssueShare))
}

func TestResolveChecklist_OwnerPath(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))

	resolved, err := OwnerPrincipal(1).ResolveChecklist(checklist.Id, "en")
	assert.NoError(t, err)
	assert.Equal(t, checklist.Id, resolved.Id)

	// Somebody else's checklist is indistinguishable from a missing one.
	_, err = OwnerPrincipal(2).ResolveChecklist(checklist.Id, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound))
}

func TestResolveChecklist_OwnerlessNeverAdmitsOwnerPath(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, nil)

	_, err := OwnerPrincipal(1).ResolveChecklist(checklist.Id, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound))
}

func TestResolveChecklist_TokenPath(t *testing.T) {
	setupTestDB(t)
	shared := createTestTree(t, ownerRef(1))
	other := createTestTree(t, ownerRef(1))

	p := TokenPrincipal(shared.Id)
	resolved, err := p.ResolveChecklist(shared.Id, "en")
	assert.NoError(t, err)
	assert.Equal(t, shared.Id, resolved.Id)

	// The token admits exactly one checklist.
	_, err = p.ResolveChecklist(other.Id, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound))
}

func TestResolveChecklist_Anonymous(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))

	_, err := Principal{}.ResolveChecklist(checklist.Id, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound))
}
