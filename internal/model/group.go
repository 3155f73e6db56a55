package model

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(50);uniqueIndex:idx_slug;not null"`
	Description string `gorm:"type:text;not null"`
}

func (Group) TableName() string {
	return "post_groups"
}

func (g Group) String() string {
	return g.Title
}
