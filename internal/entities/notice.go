package entities

// Notice - единственное уведомление, которым заканчивается любое действие над группой.
type Notice struct {
	Type    NoticeType
	Kind    ErrorKind
	Action  OrderGroupAction
	Message string
}

type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
)

type ErrorKind string

const (
	ErrorKindNone               ErrorKind = ""
	ErrorKindValidation         ErrorKind = "VALIDATION"
	ErrorKindExclusive          ErrorKind = "EXCLUSIVE"
	ErrorKindUnknown            ErrorKind = "UNKNOWN"
	ErrorKindPreconditionNotMet ErrorKind = "PRECONDITION_NOT_MET"
)

func (k ErrorKind) String() string {
	return string(k)
}

func (n Notice) IsSuccess() bool {
	return n.Type == NoticeSuccess
}
