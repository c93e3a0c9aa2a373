package models

import (
	"cloudbox/db"
)

func Init() {
	if err := db.Instance.AutoMigrate(&User{}, &Message{}); err != nil {
		panic(err)
	}
}
