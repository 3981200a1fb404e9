package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/SakadaKry/CertVault/internal/util"
	"github.com/SakadaKry/CertVault/pkg/certvault"
	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type CertificateController struct {
	*baseController
}

const ErrCertificateIdRequired = "certificate id is required"

// verify runs the verification rules for one certificate and appends the
// audit row. A lookup miss is an ordinary invalid result; only store
// failures surface as errors. The audit append is best-effort and can
// never change the outcome.
func (cc CertificateController) verify(ctx *gin.Context, certificateId, signature string, method certvault.VerificationMethod) (certvault.VerificationResult, error) {
	var result certvault.VerificationResult

	certificate, err := cc.app.Repository.Certificate.GetById(ctx, nil, certificateId)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		result = certvault.NotFoundResult()
	case err != nil:
		return result, err
	default:
		result = certvault.Evaluate(certificate.ToRecord(), signature, cc.app.Config.App.VerifyBaseURL, time.Now())
	}

	if auditErr := cc.app.Repository.VerificationAttempt.Record(ctx, nil, certificateId, method, util.ClientOrigin(ctx), result); auditErr != nil {
		cc.app.Logger.Errorf("Verification audit append failed for certificate %s: %v", certificateId, auditErr)
	}

	return result, nil
}

// GET /api/v1/certificates/verify?id=&sig=
func (cc CertificateController) VerifyCertificateQuery(ctx *gin.Context) {
	certificateId := ctx.Query("id")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "id"), nil)
		return
	}

	result, err := cc.verify(ctx, certificateId, ctx.Query("sig"), certvault.MethodWeb)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to verify certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if !result.Valid {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate verification failed", util.GenerateErrorMessages(errors.New(result.Reason)), result)
		return
	}

	util.ResponseSuccess(ctx, result)
}

// GET /api/v1/certificates/verify/:certificateId?method=&sig=
func (cc CertificateController) VerifyCertificateById(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	method := certvault.ParseMethod(ctx.Query("method"))

	result, err := cc.verify(ctx, certificateId, ctx.Query("sig"), method)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to verify certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	if !result.Valid {
		util.ResponseFailed(ctx, http.StatusNotFound, "Certificate is not valid", util.GenerateErrorMessages(errors.New(result.Reason)), result)
		return
	}

	util.ResponseSuccess(ctx, result)
}

// GET /api/v1/certificates/user?status=&page=&pageSize=
func (cc CertificateController) GetMyCertificates(ctx *gin.Context) {
	type GetMyCertificatesResponse struct {
		Certificates []certvault.PublicCertificate `json:"certificates"`
		Total        int64                         `json:"total"`
		TotalPage    int                           `json:"totalPage"`
		Page         uint                          `json:"page"`
		PageSize     uint                          `json:"pageSize"`
	}

	user, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		return
	}

	status := certvault.CertificateStatus(ctx.Query("status"))
	switch status {
	case "", certvault.StatusActive, certvault.StatusRevoked, certvault.StatusExpired:
	default:
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status filter", util.GenerateErrorMessages(errors.New("status must be one of ACTIVE, REVOKED, EXPIRED"), "status"), nil)
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

	certificates, total, err := cc.app.Repository.Certificate.GetByRecipientEmail(ctx, nil, user.Email, status, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificates", util.GenerateErrorMessages(err), nil)
		return
	}

	now := time.Now()
	projections := make([]certvault.PublicCertificate, len(certificates))
	for i, certificate := range certificates {
		projections[i] = certvault.Project(certificate.ToRecord(), cc.app.Config.App.VerifyBaseURL, now)
	}

	util.ResponseSuccess(ctx, GetMyCertificatesResponse{
		Certificates: projections,
		Total:        total,
		TotalPage:    util.CalculateTotalPage(total, pageSize),
		Page:         page,
		PageSize:     pageSize,
	})
}

// GET /api/v1/certificates/verify/:certificateId/qrcode
//
// Serves a QR code of the public verification link so a printed
// certificate can point at its own verification page.
func (cc CertificateController) VerificationQRCode(ctx *gin.Context) {
	certificateId := ctx.Params.ByName("certificateId")
	if certificateId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Certificate id is required", util.GenerateErrorMessages(errors.New(ErrCertificateIdRequired), "certificateId"), nil)
		return
	}

	certificate, err := cc.app.Repository.Certificate.GetById(ctx, nil, certificateId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Certificate not found", util.GenerateErrorMessages(err), nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get certificate", util.GenerateErrorMessages(err), nil)
		return
	}

	link := certvault.VerificationURL(cc.app.Config.App.VerifyBaseURL, certificate.ID)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate QR code", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
