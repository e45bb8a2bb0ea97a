package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Category 题目分类，Type 为分类名称
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryMap is an id -> name mapping that keeps the order it was built in
// when encoded, so categories sorted by name stay sorted on the wire.
type CategoryMap []Category

func NewCategoryMap(categories []Category) CategoryMap {
	return CategoryMap(categories)
}

func (m CategoryMap) Len() int {
	return len(m)
}

func (m CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatUint(uint64(c.ID), 10)))
		buf.WriteByte(':')
		name, err := json.Marshal(c.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
