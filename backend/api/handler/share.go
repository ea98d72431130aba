package handler

import (
	"net/http"

	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

// CreateShareLink mints a token for an owned checklist. The lookup is scoped
// to the caller's owned set, so unknown and unowned ids both answer not-found.
func CreateShareLink(c *gin.Context) {
	lang := c.GetString("lang")
	principal := principalFromContext(c)
	if !principal.Can(service.OpIssueShare) {
		respServiceError(c, notFound(c))
		return
	}
	id := paramId(c, "id")
	if id == 0 {
		respInvalidParam(c, "id")
		return
	}

	link, url, err := service.IssueShareLink(id, principal.UserID, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, gin.H{
		"token":      link.Token,
		"url":        url,
		"created_at": common.FormatTime(link.CreatedAt),
	})
}

// resolveSharedChecklist loads the checklist the share token in the path
// grants access to. ShareTokenAuth has already resolved the token.
func resolveSharedChecklist(c *gin.Context) (*model.Checklist, service.Principal, bool) {
	lang := c.GetString("lang")
	principal := principalFromContext(c)
	checklist, err := principal.ResolveChecklist(principal.ChecklistID, lang)
	if err != nil {
		respServiceError(c, err)
		return nil, principal, false
	}
	return checklist, principal, true
}

func GetSharedChecklist(c *gin.Context) {
	checklist, _, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	common.RespSuccess(c, checklist)
}

func GetSharedCategories(c *gin.Context) {
	checklist, _, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	common.RespSuccess(c, checklist.Categories)
}

func GetSharedCategory(c *gin.Context) {
	checklist, _, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, category)
}

func GetSharedItems(c *gin.Context) {
	checklist, _, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, category.Items)
}

func GetSharedItem(c *gin.Context) {
	checklist, _, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, item)
}

// UploadSharedCategoryFile is the one write surface open to share recipients,
// alongside its item counterpart below.
func UploadSharedCategoryFile(c *gin.Context) {
	checklist, principal, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpAttachFile) {
		respServiceError(c, notFound(c))
		return
	}
	uploadCategoryFile(c, checklist)
}

func UploadSharedItemFile(c *gin.Context) {
	checklist, principal, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpAttachFile) {
		respServiceError(c, notFound(c))
		return
	}
	uploadItemFile(c, checklist)
}

// CloneSharedChecklist clones the shared checklist into a fresh, ownerless
// tree. The operation never mutates the shared checklist itself.
func CloneSharedChecklist(c *gin.Context) {
	lang := c.GetString("lang")
	checklist, principal, ok := resolveSharedChecklist(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpClone) {
		respServiceError(c, notFound(c))
		return
	}
	var payload CloneRequestPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respInvalidParam(c, "body")
			return
		}
		if err := validate.Struct(&payload); err != nil {
			common.RespErrorStr(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	clone, err := service.CloneChecklist(checklist.Id, payload.Title, nil, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, clone)
}
