package catalog

import (
	"showdb/internal/placeholder"
	"showdb/internal/types"
)

// Fixtures are the immutable local datasets the gateway serves when the live
// API is unreachable or disabled. They are injected at construction so tests
// can substitute their own.
type Fixtures struct {
	Movies []types.Title
	Series []types.Title
}

// ForKind returns the fixture list for one kind.
func (f Fixtures) ForKind(kind types.MediaType) []types.Title {
	if kind == types.MediaTV {
		return f.Series
	}
	return f.Movies
}

// Union returns movies followed by series.
func (f Fixtures) Union() []types.Title {
	union := make([]types.Title, 0, len(f.Movies)+len(f.Series))
	union = append(union, f.Movies...)
	union = append(union, f.Series...)
	return union
}

// Find looks up a fixture by id within one kind.
func (f Fixtures) Find(kind types.MediaType, id int) *types.Title {
	for _, t := range f.ForKind(kind) {
		if t.ID == id {
			t := t
			return &t
		}
	}
	return nil
}

type fixtureSeed struct {
	id       int
	name     string
	date     string
	rating   float64
	overview string
}

var movieSeeds = []fixtureSeed{
	{550, "Fight Club", "1999-10-15", 8.8, "An insomniac office worker and a devil-may-care soapmaker form an underground fight club that evolves into much more."},
	{278, "The Shawshank Redemption", "1994-09-23", 9.3, "Two imprisoned men bond over a number of years, finding solace and eventual redemption."},
	{238, "The Godfather", "1972-03-24", 9.2, "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant youngest son."},
	{155, "The Dark Knight", "2008-07-18", 9.0, "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological tests."},
	{27205, "Inception", "2010-07-16", 8.8, "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea."},
	{680, "Pulp Fiction", "1994-10-14", 8.9, "The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption."},
	{13, "Forrest Gump", "1994-07-06", 8.8, "The presidencies of Kennedy and Johnson unfold from the perspective of an Alabama man with an IQ of 75."},
	{603, "The Matrix", "1999-03-31", 8.7, "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers."},
	{24428, "Interstellar", "2014-11-07", 8.6, "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival."},
	{100402, "The Avengers", "2012-05-04", 8.0, "Earth's mightiest heroes must come together and learn to fight as a team to save the world."},
	{19995, "Avatar", "2009-12-18", 7.8, "A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and his new world."},
	{807, "Se7en", "1995-09-22", 8.6, "Two detectives hunt a serial killer who uses the seven deadly sins as his motives."},
}

var seriesSeeds = []fixtureSeed{
	{1396, "Breaking Bad", "2008-01-20", 9.5, "A high school chemistry teacher diagnosed with inoperable lung cancer turns to cooking methamphetamine with a former student."},
	{1399, "Game of Thrones", "2011-04-17", 9.2, "Nine noble families fight for control over the lands of Westeros, while an ancient evil awakens in the far North."},
	{2316, "The Office", "2005-03-24", 9.0, "A mockumentary on a group of typical office workers, where the workday consists of ego clashes, inappropriate behavior, and tedium."},
	{66573, "Stranger Things", "2016-07-15", 8.7, "When a young boy disappears, his friends, family and local police uncover a mystery involving secret government experiments."},
	{46952, "The Crown", "2016-11-04", 8.6, "Follows the political rivalries and romance of Queen Elizabeth II's reign and the events that shaped the second half of the twentieth century."},
	{1668, "Friends", "1994-09-22", 8.9, "Follows the personal and professional lives of six twenty to thirty-something-year-old friends living in Manhattan."},
	{1400, "The Sopranos", "1999-01-10", 9.2, "New Jersey mob boss Tony Soprano deals with personal and professional struggles in his home and business life."},
	{19885, "Sherlock", "2010-07-25", 9.1, "A modern update finds the famous sleuth and his doctor partner solving crime in 21st century London."},
	{82856, "The Mandalorian", "2019-11-12", 8.7, "After the fall of the Empire, a lone bounty hunter operates in the outer reaches of the galaxy."},
	{54613, "Succession", "2018-06-03", 8.9, "The Roy family is known for controlling the biggest media and entertainment company in the world."},
	{1402, "The Wire", "2002-06-02", 9.3, "Baltimore homicide detective Jimmy McNulty is forced to work with criminals to solve murders."},
}

// DefaultFixtures builds the standard offline datasets. Poster art is rendered
// deterministically from each title, so every fixture always has a poster.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Movies: buildFixtures(movieSeeds, types.MediaMovie),
		Series: buildFixtures(seriesSeeds, types.MediaTV),
	}
}

func buildFixtures(seeds []fixtureSeed, kind types.MediaType) []types.Title {
	titles := make([]types.Title, len(seeds))
	for i, s := range seeds {
		t := types.Title{
			ID:          s.id,
			MediaType:   kind,
			Name:        s.name,
			ReleaseDate: s.date,
			VoteAverage: s.rating,
			Overview:    s.overview,
		}
		t.PosterPath = placeholder.Render(t.Name, t.Year())
		titles[i] = t
	}
	return titles
}
