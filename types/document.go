package types

// UploadRecord is the persisted metadata entry for one ingested PDF.
// This is the single canonical schema: every reader and writer uses the
// same field names.
type UploadRecord struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	URL           string `bson:"url" json:"url"`
	UserID        string `bson:"user_id" json:"user_id"`
	Filename      string `bson:"filename" json:"filename"`
	ExtractedText string `bson:"extracted_text" json:"extracted_text"`
	CreatedAt     int64  `bson:"created_at" json:"created_at"`
}
