package types

// UploadNoteForm multipart 表单里的文本字段，文件字段名为 file
type UploadNoteForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
