package entity

// AttachmentKind names the document slot an upload fills.
type AttachmentKind string

const (
	KindPANCard         AttachmentKind = "pan"
	KindGSTCertificate  AttachmentKind = "gst"
	KindMSMECertificate AttachmentKind = "msme"
	KindDrugLicense     AttachmentKind = "drug-license"
	KindDistributorCert AttachmentKind = "distributor"
)

// MaxAttachmentSize is the per-file upload cap in bytes.
const MaxAttachmentSize = 5 * 1024 * 1024

// Attachment is an opaque handle to one uploaded document: only the
// name and size are visible to the rest of the system, the content
// lives in object storage under S3Key.
type Attachment struct {
	ID         int            `gorm:"primaryKey"`
	SupplierID string         `gorm:"index;not null"`
	Kind       AttachmentKind `gorm:"not null"`
	FileName   string         `gorm:"not null"`
	Size       int64          `gorm:"not null"`
	S3Key      string         `gorm:"not null"`
	UploadedAt int64          `gorm:"not null"`
}
