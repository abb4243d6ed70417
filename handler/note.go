package handler

import (
	"NoteShare/config"
	"NoteShare/middleware"
	"NoteShare/pkg/context"
	"NoteShare/pkg/response"
	"NoteShare/service"
	"NoteShare/types"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

type Note struct {
	NoteService service.INoteService
	Config      *config.Config
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	secret := []byte(n.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1")
	g.GET("/notes", optional, context.Wrap(n.ListNotes))
	g.GET("/notes/:id", optional, context.Wrap(n.GetNote))
	g.GET("/notes/:id/download", optional, context.Wrap(n.Download))
	// 匿名上传是否允许由 service 按配置判断
	g.POST("/notes", optional, context.Wrap(n.UploadNote))
	g.DELETE("/notes/:id", authorize, context.Wrap(n.DeleteNote))
	g.GET("/users/:id/notes", optional, context.Wrap(n.GetUserNotes))
}

// ListNotes 笔记列表，q 按标题搜索
func (n *Note) ListNotes(c *gin.Context) error {
	var req types.ListNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	rep, err := n.NoteService.ListNotes(c.Request.Context(), req, context.OptionalUserID(c))
	if err != nil {
		return bizError(c, err)
	}
	response.Success(c, rep)
	return nil
}

// GetUserNotes 某用户上传的笔记
func (n *Note) GetUserNotes(c *gin.Context) error {
	uploaderID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.ListNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	rep, err := n.NoteService.GetUserNotes(c.Request.Context(), uploaderID, req, context.OptionalUserID(c))
	if err != nil {
		return bizError(c, err)
	}
	response.Success(c, rep)
	return nil
}

func (n *Note) GetNote(c *gin.Context) error {
	noteID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := n.NoteService.GetNote(c.Request.Context(), noteID, context.OptionalUserID(c))
	if err != nil {
		return bizError(c, err)
	}
	response.Success(c, item)
	return nil
}

// Download 记一次下载并重定向到文件地址
func (n *Note) Download(c *gin.Context) error {
	noteID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	url, err := n.NoteService.RecordDownload(c.Request.Context(), noteID)
	if err != nil {
		return bizError(c, err)
	}
	c.Redirect(http.StatusFound, url)
	return nil
}

// UploadNote multipart 上传：title, description, file
func (n *Note) UploadNote(c *gin.Context) error {
	var form types.UploadNoteForm
	if err := c.ShouldBind(&form); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "请选择要上传的文件")
	}
	file, err := header.Open()
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()

	fileType := header.Header.Get("Content-Type")
	if fileType == "" || fileType == "application/octet-stream" {
		// 客户端没给类型时按内容识别
		if mt, err := mimetype.DetectReader(file); err == nil {
			fileType = mt.String()
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
	}

	item, err := n.NoteService.UploadNote(c.Request.Context(), &service.UploadNoteInput{
		Title:       form.Title,
		Description: form.Description,
		FileName:    header.Filename,
		FileType:    strings.TrimSpace(fileType),
		Size:        header.Size,
		Body:        file,
		UploaderID:  context.OptionalUserID(c),
	})
	if err != nil {
		return bizError(c, err)
	}
	response.Success(c, item)
	return nil
}

// DeleteNote 删除笔记，只有上传者可以删除
func (n *Note) DeleteNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	noteID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := n.NoteService.DeleteNote(c.Request.Context(), noteID, userID); err != nil {
		return bizError(c, err)
	}
	response.Success(c, types.DeleteNoteResponse{NoteID: noteID})
	return nil
}
