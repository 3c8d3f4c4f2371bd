package domain

// Форматы времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ограничения бизнес-валидации
const (
	MaxNotesLength           = 1000
	MaxNameLength            = 100
	MaxRoomTypeLength        = 50
	MaxEmailLength           = 255
	MaxProofOfIdentityLength = 100
	MinPhoneLength           = 5
	MaxPhoneLength           = 20
	MinUsernameLength        = 3
	MaxUsernameLength        = 50
	MinPasswordLength        = 8
	MaxFilenameLength        = 255
	DefaultListLimit         = 100
	MaxListLimit             = 500
)

// ProofImagePrefix префикс ключей сканов документов гостей
const ProofImagePrefix = "customer_proofs"

// BlockingStatuses статусы, в которых бронь занимает номер
// Используется при проверке доступности номера
var BlockingStatuses = []BookingStatus{
	StatusPrebooked,
	StatusConfirmed,
	StatusCheckedIn,
}

// TerminalStatuses статусы, из которых переходов нет
var TerminalStatuses = []BookingStatus{
	StatusCheckedOut,
	StatusCancelled,
}
