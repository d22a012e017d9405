package domain

type UpdateKind string

const (
	KindCommand  UpdateKind = "command"
	KindCallback UpdateKind = "callback"
	KindUpload   UpdateKind = "upload"
)

// Update is one inbound event, decoded from the transport representation.
type Update struct {
	Kind      UpdateKind
	UserID    int64
	ChatID    int64
	MessageID int
	Username  string

	// Text holds the raw command text for KindCommand.
	Text string
	// CallbackID and Action are set for KindCallback.
	CallbackID string
	Action     Action
	// FileRef is the transport file handle for KindUpload.
	FileRef string
}

type Session struct {
	Language    Language
	PendingFile string
}

func (s Session) HasPendingFile() bool {
	return s.PendingFile != ""
}

type Button struct {
	Text string
	Data string
}

// Menu is an inline keyboard, one slice of buttons per row.
type Menu struct {
	Rows [][]Button
}

type Document struct {
	FileName string
	Data     []byte
	Caption  string
}

type ConvertedImage struct {
	Format   Format
	FileName string
	Data     []byte
}
