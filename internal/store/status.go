package store

// OpResult is the outcome of a domain operation: a status code plus a
// human-readable message. Code 0 is success; nonzero codes identify distinct
// failure reasons and are scoped to the operation that returned them.
type OpResult struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OK reports whether the operation succeeded.
func (r OpResult) OK() bool {
	return r.Code == CodeOK
}

// LoginResult extends OpResult with the authenticated user's identity.
type LoginResult struct {
	OpResult
	UserID   int64  `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
}

// Codes shared by all operations.
const (
	CodeOK      = 0
	CodeDBError = -1
)

// AddDormitory / UpdateDormitory / DeleteDormitory.
const (
	CodeDormitoryEmptyInput   = 1
	CodeDormitoryIDTaken      = 2
	CodeDormitoryNameTaken    = 3
	CodeDormitoryNotFound     = 2
	CodeDormitoryNameConflict = 3
	CodeDormitoryHasRooms     = 2
	CodeDormitoryGone         = 3
)

// AddRoom / UpdateRoom / DeleteRoom.
const (
	CodeRoomInvalidInput      = 1
	CodeRoomDormitoryNotFound = 2
	CodeRoomNumberTaken       = 3
	CodeRoomNotFound          = 2
	CodeRoomNumberConflict    = 3
	CodeRoomHasResidents      = 2
	CodeRoomGone              = 3
)

// AddResident / MoveResident / UpdateResident / DeleteResident.
const (
	CodeResidentRoomNotFound = 1
	CodeResidentRoomFull     = 2
	CodeResidentNIMTaken     = 3
	CodeResidentUnknown      = 4
	CodeResidentBadNIM       = 5

	CodeResidentNotFound    = 1
	CodeMoveTargetNotFound  = 2
	CodeMoveTargetFull      = 3
	CodeResidentNIMConflict = 3
	CodeResidentEmptyName   = 6
)

// RegisterUser / LoginUser.
const (
	CodeUserEmptyInput = 1
	CodeUsernameTaken  = 2
	CodeUserNotFound   = 2
	CodeWrongPassword  = 3
)

// Informational success messages for operations that report "nothing to do"
// variants distinctly from a real change.
const (
	MsgResidentUpdated        = "resident updated"
	MsgResidentNoChange       = "no fields to update"
	MsgResidentAlreadyInRoom  = "resident is already in the target room"
	MsgDormitoryNameUnchanged = "dormitory name unchanged"
	MsgRoomUnchanged          = "room details unchanged"
)
