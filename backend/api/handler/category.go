package handler

import (
	"net/http"

	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

type CategoryRequestPayload struct {
	Name string `json:"name" validate:"required,max=200"`
}

func GetCategories(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	common.RespSuccess(c, checklist.Categories)
}

func CreateCategory(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpMutateTree) {
		respServiceError(c, notFound(c))
		return
	}
	var payload CategoryRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	category := model.Category{
		ChecklistId: checklist.Id,
		Name:        payload.Name,
		Items:       []model.Item{},
		Files:       []model.CategoryFile{},
	}
	if err := category.Insert(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, &category)
}

// resolveCategoryFromPath resolves the :categoryId parameter inside the
// already admitted checklist.
func resolveCategoryFromPath(c *gin.Context, checklist *model.Checklist) (*model.Category, bool) {
	lang := c.GetString("lang")
	categoryId := paramId(c, "categoryId")
	if categoryId == 0 {
		respInvalidParam(c, "categoryId")
		return nil, false
	}
	category, err := model.GetCategoryInChecklist(checklist.Id, categoryId, lang)
	if err != nil {
		respServiceError(c, err)
		return nil, false
	}
	return category, true
}

func GetCategory(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, category)
}

func UpdateCategory(c *gin.Context) {
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
	var payload CategoryRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respInvalidParam(c, "body")
		return
	}
	if err := validate.Struct(&payload); err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, err.Error())
		return
	}

	category.Name = payload.Name
	if err := category.Update(); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, category)
}

func DeleteCategory(c *gin.Context) {
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
	if err := service.DeleteCategoryTree(category); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "category deleted")
}
