package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/SakadaKry/CertVault/internal/mailer"
	"github.com/SakadaKry/CertVault/internal/model"
	"github.com/SakadaKry/CertVault/internal/util"
	"github.com/SakadaKry/CertVault/pkg/certvault"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	*baseController
}

// POST /api/v1/admin/initialize-database
//
// Explicit seeding entry point. The same conditional writes back the
// lazy path, so running this any number of times converges on one
// default template set and one default organization.
func (ac AdminController) InitializeDatabase(ctx *gin.Context) {
	err := ac.app.Repository.DB.Transaction(func(tx *gorm.DB) error {
		if err := ac.app.Repository.Template.EnsureDefaults(ctx, tx); err != nil {
			return err
		}

		return ac.app.Repository.Organization.EnsureDefault(ctx, tx)
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to initialize database", util.GenerateErrorMessages(err), nil)
		return
	}

	count, err := ac.app.Repository.Template.Count(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to count templates", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"templateCount": count,
	})
}

type IssueCertificateRequest struct {
	TemplateName   string `form:"templateName" json:"templateName" binding:"required,strNotEmpty"`
	RecipientName  string `form:"recipientName" json:"recipientName" binding:"required,strNotEmpty"`
	RecipientEmail string `form:"recipientEmail" json:"recipientEmail" binding:"required,email"`
	ExpiryDate     string `form:"expiryDate" json:"expiryDate"`
	SecurityLevel  string `form:"securityLevel" json:"securityLevel" binding:"omitempty,oneof=standard high confidential"`
}

// POST /api/v1/admin/certificates
func (ac AdminController) IssueCertificate(ctx *gin.Context) {
	user, err := ac.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	var req IssueCertificateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", err, nil)
		return
	}

	securityLevel := certvault.SecurityLevel(req.SecurityLevel)
	if req.SecurityLevel == "" {
		securityLevel = certvault.SecurityLevelStandard
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiryDate)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid expiry date", util.GenerateErrorMessages(errors.New("expiryDate must be RFC3339"), "expiryDate"), nil)
			return
		}
		expiryDate = &parsed
	}

	template, err := ac.app.Repository.Template.GetByName(ctx, nil, req.TemplateName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown template", util.GenerateErrorMessages(err, "templateName"), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get template", util.GenerateErrorMessages(err), nil)
		return
	}

	organization, err := ac.app.Repository.Organization.GetDefault(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get default organization", util.GenerateErrorMessages(err), nil)
		return
	}

	signature := ""
	if securityLevel.RequiresSignature() {
		signature, err = util.GenerateSignatureToken()
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate signature token", util.GenerateErrorMessages(err), nil)
			return
		}
	}

	issuerName := user.FirstName + " " + user.LastName
	certificate, err := ac.app.Repository.Certificate.Create(ctx, nil, &model.Certificate{
		TemplateName:   template.Name,
		RecipientName:  req.RecipientName,
		RecipientEmail: req.RecipientEmail,
		OrganizationID: organization.ID,
		IssueDate:      time.Now(),
		ExpiryDate:     expiryDate,
		Status:         certvault.StatusActive,
		IssuerName:     issuerName,
		SecurityLevel:  securityLevel,
		Signature:      signature,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to issue certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	// Notify the recipient best-effort; the certificate already exists.
	go func() {
		vars := struct {
			RecipientName       string
			TemplateDisplayName string
			IssuerName          string
			OrganizationName    string
			VerificationURL     string
			SignatureToken      string
		}{
			RecipientName:       certificate.RecipientName,
			TemplateDisplayName: template.DisplayName,
			IssuerName:          certificate.IssuerName,
			OrganizationName:    organization.Name,
			VerificationURL:     certvault.VerificationURL(ac.app.Config.App.VerifyBaseURL, certificate.ID),
			SignatureToken:      signature,
		}

		if _, err := ac.app.Mailer.Send(mailer.CERTIFICATE_ISSUED_TEMPLATE, certificate.RecipientName, certificate.RecipientEmail, vars); err != nil {
			ac.app.Logger.Errorf("Failed to send issuance notification for certificate %s: %v", certificate.ID, err)
		}
	}()

	projection := certvault.Project(certificate.ToRecord(), ac.app.Config.App.VerifyBaseURL, time.Now())

	util.ResponseSuccess(ctx, gin.H{
		"certificate": projection,
		// Returned once at issuance; it is never readable again.
		"signatureToken": signature,
	})
}

// GET /api/v1/admin/certificates/:certificateId/verifications
//
// Serves the append-only verification trail for one certificate, newest
// first.
func (ac AdminController) GetVerificationHistory(ctx *gin.Context) {
	type GetVerificationHistoryResponse struct {
		Attempts  []model.VerificationAttempt `json:"attempts"`
		Total     int64                       `json:"total"`
		TotalPage int                         `json:"totalPage"`
		Page      uint                        `json:"page"`
		PageSize  uint                        `json:"pageSize"`
	}

	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	var query struct {
		Page     uint `form:"page,default=1"`
		PageSize uint `form:"pageSize,default=20"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", err, nil)
		return
	}
	page, pageSize := util.NormalizePageQuery(query.Page, query.PageSize)

	attempts, total, err := ac.app.Repository.VerificationAttempt.GetByCertificateId(ctx, nil, certificateId, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get verification history", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, GetVerificationHistoryResponse{
		Attempts:  attempts,
		Total:     total,
		TotalPage: util.CalculateTotalPage(total, pageSize),
		Page:      page,
		PageSize:  pageSize,
	})
}

// POST /api/v1/admin/certificates/:certificateId/revoke
func (ac AdminController) RevokeCertificate(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	certificate, err := ac.app.Repository.Certificate.UpdateStatus(ctx, nil, certificateId, certvault.StatusRevoked)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to revoke certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	projection := certvault.Project(certificate.ToRecord(), ac.app.Config.App.VerifyBaseURL, time.Now())

	util.ResponseSuccess(ctx, gin.H{
		"certificate": projection,
	})
}
