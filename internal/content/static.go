package content

import "fmt"

// Owner is the studio name shown in the header mark.
const Owner = "hanssen"

func picsum(w, h, seed int) string {
	return fmt.Sprintf("https://picsum.photos/%d/%d?random=%d", w, h, seed)
}

// HeroImages are the home page carousel slides.
var HeroImages = []string{
	picsum(944, 1415, 1),
	picsum(944, 1415, 2),
	picsum(944, 1415, 3),
}

// HeroStart is the slide the carousel opens on.
const HeroStart = 1

// NotFoundImage is the full-bleed background of the 404 page.
var NotFoundImage = picsum(2000, 1333, 404)

// AboutImage and ContactImage fill the left panel of those pages.
var (
	AboutImage   = picsum(944, 1415, 21)
	ContactImage = picsum(944, 1415, 22)
)

var SocialLinks = []SocialLink{
	{Name: "Instagram", URL: "https://instagram.com"},
	{Name: "Pinterest", URL: "https://pinterest.com"},
	{Name: "Behance", URL: "https://behance.net"},
	{Name: "Twitter", URL: "https://twitter.com"},
}

var Works = []WorkItem{
	{Name: "Beige", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 1)},
	{Name: "Darkness", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 2)},
	{Name: "Gentlemen", Type: "Editorial", Year: "2024", Image: picsum(944, 1415, 3)},
	{Name: "City", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 4)},
	{Name: "Nature", Type: "Editorial", Year: "2024", Image: picsum(944, 1415, 5)},
	{Name: "Brand", Type: "Editorial", Year: "2024", Image: picsum(944, 1415, 6)},
	{Name: "Studio", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 7)},
	{Name: "Colors", Type: "Editorial", Year: "2024", Image: picsum(944, 1415, 8)},
	{Name: "Duo", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 9)},
	{Name: "Elegance", Type: "Editorial", Year: "2024", Image: picsum(944, 1415, 10)},
	{Name: "Hat", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 11)},
	{Name: "Black & White", Type: "Editorial", Year: "2024", Image: picsum(944, 1415, 12)},
	{Name: "Streets", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 13)},
	{Name: "Stoic", Type: "Commercial", Year: "2024", Image: picsum(944, 1415, 14)},
}

// ActiveWork returns the work item at i, or the first item when i is out
// of range.
func ActiveWork(i int) (WorkItem, int) {
	if i < 0 || i >= len(Works) {
		i = 0
	}
	return Works[i], i
}

var Clients = []string{"Acme Black", "Kanba Black", "Goldline Black", "Asgardia Black"}

var Exhibitions = []Credit{
	{Title: "Through the Lens", Year: "2024"},
	{Title: "Candid Connections", Year: "2024"},
	{Title: "Urban Stories", Year: "2023"},
	{Title: "Nature's Palette", Year: "2023"},
	{Title: "Moments Unseen", Year: "2022"},
	{Title: "Reflections of Prague", Year: "2022"},
}

var Awards = []Credit{
	{Title: "Prague Photography Award", Year: "2024"},
	{Title: "European Fine Art Photography", Year: "2024"},
	{Title: "Best Urban Photography", Year: "2023"},
	{Title: "Nature Photographer of the Year", Year: "2023"},
	{Title: "Candid Moments Award", Year: "2022"},
	{Title: "Excellence in Visual Storytelling", Year: "2022"},
}

var Stories = []Story{
	{Title: "Mastering Light: Techniques for Stunning Urban Photography", Image: picsum(480, 640, 101)},
	{Title: "The Art of Candid Moments: Creating Authentic Lifestyle Images", Image: picsum(482, 723, 102)},
	{Title: "Transforming Landscapes: Finding Beauty in Nature's Details", Image: picsum(500, 663, 103)},
	{Title: "Creating Impact: The Power of Black-and-White Portraits", Image: picsum(500, 625, 104)},
	{Title: "Beyond the Frame: Exploring Conceptual Fine Art Photography", Image: picsum(480, 600, 105)},
	{Title: "Adventure Awaits: Photographing the Thrill of Outdoor Exploration", Image: picsum(480, 640, 106), Inverted: true},
}
