package store

// Collection names and document field keys form the wire contract with the
// remote store. Kept as constants to avoid typo bugs in queries.
const (
	CollectionLabel = "label"
	CollectionMapmo = "mapmo"
	CollectionUser  = "user"

	FieldColor         = "color"
	FieldName          = "name"
	FieldContent       = "content"
	FieldNotifyEnabled = "isNotifyEnabled"
	FieldLabelID       = "labelID"
	FieldLocation      = "location"
	FieldUpdatedAt     = "updatedAt"
	FieldCreatedAt     = "createdAt"
	FieldNickname      = "nickname"
	FieldUserID        = "userID"
)
