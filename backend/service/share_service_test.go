package service

import (
	"testing"

	pkerrors "packlist/backend/common/errors"
	"packlist/backend/common/i18n"
	"packlist/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestIssueShareLink_OwnerScoped(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))

	link, url, err := IssueShareLink(checklist.Id, 1, "en")
	assert.NoError(t, err)
	assert.Len(t, link.Token, 32)
	assert.Equal(t, checklist.Id, link.ChecklistId)
	assert.Equal(t, "http://localhost:3000/share/"+link.Token, url)
}

func TestIssueShareLink_UnownedIsNotFound(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))

	// A different user cannot issue a link; the checklist may as well not
	// exist for them.
	_, _, err := IssueShareLink(checklist.Id, 2, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound))

	_, _, err = IssueShareLink(9999, 1, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrChecklistNotFound))
}

func TestIssueShareLink_MultipleIndependentTokens(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))

	first, _, err := IssueShareLink(checklist.Id, 1, "en")
	assert.NoError(t, err)
	second, _, err := IssueShareLink(checklist.Id, 1, "en")
	assert.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	firstTarget, err := ResolveShareToken(first.Token, "en")
	assert.NoError(t, err)
	secondTarget, err := ResolveShareToken(second.Token, "en")
	assert.NoError(t, err)
	assert.Equal(t, checklist.Id, firstTarget)
	assert.Equal(t, checklist.Id, secondTarget)
}

func TestResolveShareToken_Unknown(t *testing.T) {
	setupTestDB(t)

	_, err := ResolveShareToken("no-such-token", "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrShareNotFound))
}

func TestShareLinks_DieWithChecklist(t *testing.T) {
	setupTestDB(t)
	checklist := createTestTree(t, ownerRef(1))

	link, _, err := IssueShareLink(checklist.Id, 1, "en")
	assert.NoError(t, err)

	assert.NoError(t, model.DeleteChecklistById(checklist.Id))

	_, err = ResolveShareToken(link.Token, "en")
	assert.True(t, i18n.IsErrorCode(err, pkerrors.ErrShareNotFound))
}
