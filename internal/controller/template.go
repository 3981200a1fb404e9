package controller

import (
	"errors"
	"net/http"

	"github.com/SakadaKry/CertVault/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TemplateController struct {
	*baseController
}

type TemplateOption struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	PreviewUrl  string `json:"previewUrl,omitempty"`
}

// GET /api/v1/certificates/template-options
//
// Seeds the default template set on first use so a fresh deployment can
// serve options without a manual initialization step.
func (tc TemplateController) GetTemplateOptions(ctx *gin.Context) {
	count, err := tc.app.Repository.Template.Count(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to count templates", util.GenerateErrorMessages(err), nil)
		return
	}

	if count == 0 {
		err := tc.app.Repository.DB.Transaction(func(tx *gorm.DB) error {
			if err := tc.app.Repository.Template.EnsureDefaults(ctx, tx); err != nil {
				return err
			}

			return tc.app.Repository.Organization.EnsureDefault(ctx, tx)
		})
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to initialize templates", util.GenerateErrorMessages(err), nil)
			return
		}
	}

	templates, err := tc.app.Repository.Template.GetAll(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get templates", util.GenerateErrorMessages(err), nil)
		return
	}

	options := make([]TemplateOption, len(templates))
	for i, template := range templates {
		options[i] = TemplateOption{
			Key:         template.Name,
			Label:       template.DisplayName,
			Description: template.Description,
		}

		if template.HasPreview() {
			url, err := template.PreviewPresignedUrl(ctx, tc.app.S3)
			if err != nil {
				// A broken preview should not take the whole option list down.
				tc.app.Logger.Errorf("Failed to presign preview for template %s: %v", template.Name, err)
				continue
			}
			options[i].PreviewUrl = url
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"templateOptions": options,
	})
}

// POST /api/v1/admin/templates/:templateName/preview
func (tc TemplateController) UploadTemplatePreview(ctx *gin.Context) {
	templateName := ctx.Params.ByName("templateName")
	if templateName == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Template name is required", util.GenerateErrorMessages(errors.New("template name is required"), "templateName"), nil)
		return
	}

	template, err := tc.app.Repository.Template.GetByName(ctx, nil, templateName)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Template not found", util.GenerateErrorMessages(err), nil)
		return
	}

	fileHeader, err := ctx.FormFile("preview")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Preview file is required", util.GenerateErrorMessages(err, "preview"), nil)
		return
	}

	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		DirectoryPath: util.GetTemplatePreviewDirectoryPath(template.Name),
		Bucket:        tc.app.Config.Minio.BUCKET,
		S3:            tc.app.S3,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload preview", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := tc.app.Repository.Template.SetPreview(ctx, nil, template.Name, info.Bucket, info.Key); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save preview reference", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"templateName": template.Name,
		"previewKey":   info.Key,
	})
}
