package domain

import (
	"fmt"
	"time"
)

// Customer гость отеля
type Customer struct {
	ID              int64
	Name            string
	Email           string
	Phone           string
	Address         *string
	ProofOfIdentity *string

	// Скан документа, удостоверяющего личность
	ProofImageURL      *string
	ProofImageFilename *string
	UploadedAt         *time.Time

	CreatedAt time.Time
}

// ProofImageKey ключ объекта со сканом документа в хранилище
func (c *Customer) ProofImageKey(filename string) string {
	return fmt.Sprintf("%s/%d/%s", ProofImagePrefix, c.ID, filename)
}
