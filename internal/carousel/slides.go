// Package carousel holds the hero carousel slides and the auto-advance
// rotator that walks them on a fixed interval.
package carousel

// Slide is one hero image in the carousel ring.
type Slide struct {
	ID    string `json:"id"`
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title,omitempty"`
}

// DefaultSlides returns the static slide set the storefront ships with.
func DefaultSlides() []Slide {
	return []Slide{
		{
			ID:    "1",
			Src:   "https://images.pexels.com/photos/3642665/pexels-photo-3642665.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:   "Fresh Vegetables",
			Title: "Fresh Vegetables",
		},
		{
			ID:    "2",
			Src:   "https://images.pexels.com/photos/3962286/pexels-photo-3962286.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:   "Organic Produce",
			Title: "Organic Produce",
		},
		{
			ID:    "3",
			Src:   "https://images.pexels.com/photos/3906857/pexels-photo-3906857.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:   "Fresh Fruits",
			Title: "Fresh Fruits",
		},
		{
			ID:    "4",
			Src:   "https://images.pexels.com/photos/3906857/pexels-photo-3906857.jpeg?auto=compress&cs=tinysrgb&w=800",
			Alt:   "Grocery Store",
			Title: "Quality Products",
		},
	}
}
