package server

import (
	"NoteShare/handler"
)

type Handlers struct {
	Note   *handler.Note
	Rating *handler.Rating
}
