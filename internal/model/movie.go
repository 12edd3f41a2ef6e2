package model

// Movie 电影
type Movie struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Title string `json:"title"`
	Year  int64  `json:"year"`
}

func (Movie) TableName() string { return "movies" }

// Person 人物（导演/演员）
type Person struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name"`
	Birth *int64 `json:"birth"` // 出生年份，可能为空
}

func (Person) TableName() string { return "people" }

// Director 导演关系
type Director struct {
	MovieID  int64 `json:"movie_id"`
	PersonID int64 `json:"person_id"`
}

func (Director) TableName() string { return "directors" }

// Star 演员关系
type Star struct {
	MovieID  int64 `json:"movie_id"`
	PersonID int64 `json:"person_id"`
}

func (Star) TableName() string { return "stars" }

// Rating 评分，每部电影至多一条
type Rating struct {
	MovieID int64   `json:"movie_id" gorm:"primaryKey;autoIncrement:false"`
	Rating  float64 `json:"rating"`
	Votes   int64   `json:"votes"`
}

func (Rating) TableName() string { return "ratings" }
