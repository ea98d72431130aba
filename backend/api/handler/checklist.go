package handler

import (
	"net/http"

	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

type ChecklistRequestPayload struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

type CloneRequestPayload struct {
	Title string `json:"title" validate:"omitempty,max=200"`
}

// resolveChecklistFromPath admits the request's principal to the checklist in
// the :id path parameter, replying on failure. All callers can just return
// when ok is false.
func resolveChecklistFromPath(c *gin.Context) (*model.Checklist, service.Principal, bool) {
	lang := c.GetString("lang")
	principal := principalFromContext(c)
	id := paramId(c, "id")
	if id == 0 {
		respInvalidParam(c, "id")
		return nil, principal, false
	}
	checklist, err := principal.ResolveChecklist(id, lang)
	if err != nil {
		respServiceError(c, err)
		return nil, principal, false
	}
	return checklist, principal, true
}

// GetChecklists lists the caller's checklists. Without a resolved identity the
// answer is an empty list, not an auth error.
func GetChecklists(c *gin.Context) {
	principal := principalFromContext(c)
	if principal.Kind != service.PrincipalOwner {
		common.RespSuccess(c, []*model.Checklist{})
		return
	}
	checklists, err := model.GetChecklistsByOwner(principal.UserID)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, checklists)
}

func CreateChecklist(c *gin.Context) {
	principal := principalFromContext(c)
	if !principal.Can(service.OpMutateTree) {
		common.RespErrorStr(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var payload ChecklistRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	ownerId := principal.UserID
	checklist := model.Checklist{
		Title:       payload.Title,
		Description: payload.Description,
		OwnerId:     &ownerId,
		Categories:  []model.Category{},
	}
	if err := checklist.Insert(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, &checklist)
}

func GetChecklist(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	common.RespSuccess(c, checklist)
}

func UpdateChecklist(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpMutateTree) {
		respServiceError(c, notFound(c))
		return
	}
	var payload ChecklistRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	checklist.Title = payload.Title
	checklist.Description = payload.Description
	if err := checklist.Update(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, checklist)
}

func DeleteChecklist(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpMutateTree) {
		respServiceError(c, notFound(c))
		return
	}
	if err := service.DeleteChecklistTree(checklist); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "checklist deleted")
}

// CloneChecklist clones an owned checklist; the copy belongs to the caller.
func CloneChecklist(c *gin.Context) {
	lang := c.GetString("lang")
	checklist, principal, ok := resolveChecklistFromPath(c)
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

	ownerId := principal.UserID
	clone, err := service.CloneChecklist(checklist.Id, payload.Title, &ownerId, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, clone)
}
