package handler

import (
	"packlist/backend/common"
	"packlist/backend/model"
	"packlist/backend/service"

	"github.com/gin-gonic/gin"
)

// uploadCategoryFile is the shared core of the owner and share-token upload
// endpoints; admission to the checklist has already happened.
func uploadCategoryFile(c *gin.Context, checklist *model.Checklist) {
	lang := c.GetString("lang")
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respInvalidParam(c, "file")
		return
	}
	record, err := service.AttachCategoryFile(category.Id, fileHeader, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, record)
}

func uploadItemFile(c *gin.Context, checklist *model.Checklist) {
	lang := c.GetString("lang")
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respInvalidParam(c, "file")
		return
	}
	record, err := service.AttachItemFile(item.Id, fileHeader, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccess(c, record)
}

func GetCategoryFiles(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, category.Files)
}

func UploadCategoryFile(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpAttachFile) {
		respServiceError(c, notFound(c))
		return
	}
	uploadCategoryFile(c, checklist)
}

func DeleteCategoryFile(c *gin.Context) {
	lang := c.GetString("lang")
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpDetachFile) {
		respServiceError(c, notFound(c))
		return
	}
	category, ok := resolveCategoryFromPath(c, checklist)
	if !ok {
		return
	}
	fileId := paramId(c, "fileId")
	if fileId == 0 {
		respInvalidParam(c, "fileId")
		return
	}
	file, err := model.GetCategoryFileById(category.Id, fileId, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	if err := service.DetachCategoryFile(file); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "file deleted")
}

func GetItemFiles(c *gin.Context) {
	checklist, _, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	common.RespSuccess(c, item.Files)
}

func UploadItemFile(c *gin.Context) {
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpAttachFile) {
		respServiceError(c, notFound(c))
		return
	}
	uploadItemFile(c, checklist)
}

func DeleteItemFile(c *gin.Context) {
	lang := c.GetString("lang")
	checklist, principal, ok := resolveChecklistFromPath(c)
	if !ok {
		return
	}
	if !principal.Can(service.OpDetachFile) {
		respServiceError(c, notFound(c))
		return
	}
	item, ok := resolveItemFromPath(c, checklist)
	if !ok {
		return
	}
	fileId := paramId(c, "fileId")
	if fileId == 0 {
		respInvalidParam(c, "fileId")
		return
	}
	file, err := model.GetItemFileById(item.Id, fileId, lang)
	if err != nil {
		respServiceError(c, err)
		return
	}
	if err := service.DetachItemFile(file); err != nil {
		respServiceError(c, err)
		return
	}
	common.RespSuccessStr(c, "file deleted")
}
