package model

import "time"

type Client struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
}
