package service

import (
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"supplierhub/internal/contract"
	"supplierhub/internal/domain/entity"
	"supplierhub/internal/infrastructure/aws/storage"
	"supplierhub/internal/utils"
	"supplierhub/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// validAttachmentTypes is the extension allow-list for uploaded
// documents.
var validAttachmentTypes = []string{"pdf", "jpg", "jpeg", "png"}

// Upload stores one document ≤5MB, records its opaque handle and wires
// it into the section (or distributor entry) the kind belongs to.
func (o *OnboardingService) Upload(supplierID string, kind entity.AttachmentKind, distributorID int, fileHeader *multipart.FileHeader) (*contract.SessionResponse, apierror.ErrorResponse) {
	session, apierr := o.fetch(supplierID)
	if apierr != nil {
		return nil, apierr
	}

	if apierr := checkAttachmentFile(fileHeader); apierr != nil {
		return nil, apierr
	}

	// Resolve the target slot up front: an unknown distributor id must
	// fail before anything is pushed to storage, or the object and row
	// would be orphaned.
	assign, apierr := o.sectionSlot(session, kind, distributorID)
	if apierr != nil {
		return nil, apierr
	}

	key, size, apierr := handleAttachmentUpload(o.S3, fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	att := &entity.Attachment{
		SupplierID: supplierID,
		Kind:       kind,
		FileName:   fileHeader.Filename,
		Size:       size,
		S3Key:      key,
		UploadedAt: utils.NowUTC(),
	}
	if err := o.Attachments.Save(att); err != nil {
		log.Errorf("failed to save attachment for supplier %s: %v", supplierID, err)
		return nil, apierror.InternalServerError
	}

	assign(att.ID)

	if serr := o.save(session); serr != nil {
		return nil, serr
	}
	return o.toResponse(session)
}

// sectionSlot finds the document slot the kind belongs to and returns
// the setter that will point it at the stored attachment.
func (o *OnboardingService) sectionSlot(session *entity.OnboardingSession, kind entity.AttachmentKind, distributorID int) (func(attachmentID int), apierror.ErrorResponse) {
	switch kind {
	case entity.KindPANCard:
		return func(id int) { session.PAN.DocumentID = id }, nil
	case entity.KindGSTCertificate:
		return func(id int) { session.GST.DocumentID = id }, nil
	case entity.KindMSMECertificate:
		return func(id int) { session.MSME.DocumentID = id }, nil
	case entity.KindDrugLicense:
		return func(id int) { session.DrugLicense.DocumentID = id }, nil
	case entity.KindDistributorCert:
		for _, d := range session.Distributors {
			if d.ID == distributorID {
				return func(id int) { d.DocumentID = id }, nil
			}
		}
		return nil, apierror.UnknownDistributorError
	default:
		return nil, apierror.InvalidAttachmentError
	}
}

// ParseAttachmentKind maps a route parameter onto a document slot.
func ParseAttachmentKind(raw string) (entity.AttachmentKind, bool) {
	switch entity.AttachmentKind(raw) {
	case entity.KindPANCard, entity.KindGSTCertificate, entity.KindMSMECertificate,
		entity.KindDrugLicense, entity.KindDistributorCert:
		return entity.AttachmentKind(raw), true
	default:
		return "", false
	}
}

// handleAttachmentUpload pushes the file to S3 under a fresh UUID name,
// keeping the original extension.
func handleAttachmentUpload(s3 storage.S3Client, fileHeader *multipart.FileHeader) (string, int64, apierror.ErrorResponse) {
	ext := filepath.Ext(fileHeader.Filename)
	data, apierr := readAttachmentFile(fileHeader)
	if apierr != nil {
		return "", 0, apierr
	}

	key, err := s3.UploadFile(data, uuid.NewString()+ext)
	if err != nil {
		log.Errorf("failed to upload attachment: %v", err)
		return "", 0, apierror.InternalServerError
	}
	return key, int64(len(data)), nil
}

func checkAttachmentFile(fileHeader *multipart.FileHeader) apierror.ErrorResponse {
	if fileHeader.Size > entity.MaxAttachmentSize {
		return apierror.AttachmentTooLargeError
	}

	if strings.TrimSpace(fileHeader.Filename) == "" {
		return apierror.MissingAttachmentError
	}

	if _, ok := utils.CheckFileExt(fileHeader.Filename, validAttachmentTypes); !ok {
		return apierror.InvalidAttachmentError
	}
	return nil
}

func readAttachmentFile(fileHeader *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open attachment: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Errorf("failed to read attachment: %v", err)
		return nil, apierror.InternalServerError
	}
	return data, nil
}
