package domain

// RatingValue は評価値（1〜5）を表す値オブジェクト
type RatingValue struct {
	value int
}

// NewRatingValue は評価値を検証してRatingValueを作成する
func NewRatingValue(value int) (RatingValue, error) {
	if value < 1 || value > 5 {
		return RatingValue{}, ErrInvalidRating
	}
	return RatingValue{value: value}, nil
}

func (v RatingValue) Int() int {
	return v.value
}
