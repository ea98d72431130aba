package handler

import (
	"net/http"

	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

type ItemRequestPayload struct {
	Name        string `json:"name" validate:"required,max=200"`
	IsCompleted *bool  `json:"is_completed"`
}

func GetItems(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, category.Items)
}

func CreateItem(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpMutateTree) {
		respServiceError(c, notFound(c))
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	var payload ItemRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	item := model.Item{
		CategoryId: category.Id,
		Name:       payload.Name,
		Files:      []model.ItemFile{},
	}
	if payload.IsCompleted != nil {
		item.IsCompleted = *payload.IsCompleted
	}
	if err := item.Insert(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, &item)
}

func resolveItemFromPath(c *gin.Context, checklist *model.Checklist) (*model.Item, bool) {
	lang := c.GetString("lang")
	categoryId := paramId(c, "categoryId")
	itemId := paramId(c, "itemId")
	if categoryId == 0 || itemId == 0 {
		respInvalidParam(c, "itemId")
		return nil, false
	}
	item, err := model.GetItemInCategory(checklist.Id, categoryId, itemId, lang)
	if err != nil {
		respServiceError(c, err)
		return nil, false
	}
	return item, true
}

func GetItem(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, item)
}

func UpdateItem(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpMutateTree) {
		respServiceError(c, notFound(c))
		return
	}
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	var payload ItemRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	item.Name = payload.Name
	if payload.IsCompleted != nil {
		item.IsCompleted = *payload.IsCompleted
	}
	if err := item.Update(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, item)
}

func DeleteItem(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpMutateTree) {
		respServiceError(c, notFound(c))
		return
	}
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	if err := service.DeleteItemTree(item); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "item deleted")
}
