package movie

type fallbackEntry struct {
	id     int
	title  string
	year   string
	rating float64
	genre  string
	poster string
	plot   string
}

var fallbackEntries = []fallbackEntry{
	{1, "The Shawshank Redemption", "1994", 9.3, "Drama",
		"https://upload.wikimedia.org/wikipedia/en/8/81/ShawshankRedemptionMoviePoster.jpg",
		"Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency."},
	{2, "The Godfather", "1972", 9.2, "Crime",
		"https://upload.wikimedia.org/wikipedia/en/1/1c/Godfather_ver1.jpg",
		"The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son."},
	{3, "The Dark Knight", "2008", 9.0, "Action",
		"https://upload.wikimedia.org/wikipedia/en/1/1c/The_Dark_Knight_%282008_film%29.jpg",
		"When the menace known as the Joker wreaks havoc on Gotham, Batman must accept one of the greatest tests of his ability to fight injustice."},
	{4, "Pulp Fiction", "1994", 8.9, "Crime",
		"https://upload.wikimedia.org/wikipedia/en/3/3b/Pulp_Fiction_%281994%29_poster.jpg",
		"The lives of two mob hitmen, a boxer, a gangster and his wife intertwine in four tales of violence and redemption."},
	{5, "Inception", "2010", 8.8, "Sci-Fi",
		"https://upload.wikimedia.org/wikipedia/en/2/2e/Inception_%282010%29_theatrical_poster.jpg",
		"A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea."},
	{6, "Fight Club", "1999", 8.8, "Drama",
		"https://upload.wikimedia.org/wikipedia/en/f/fc/Fight_Club_poster.jpg",
		"An insomniac office worker and a devil-may-care soapmaker form an underground fight club that evolves into much more."},
	{7, "Forrest Gump", "1994", 8.8, "Drama",
		"https://upload.wikimedia.org/wikipedia/en/6/67/Forrest_Gump_poster.jpg",
		"The presidencies of Kennedy and Johnson, the Vietnam War and other events unfold from the perspective of an Alabama man."},
	{8, "The Matrix", "1999", 8.7, "Sci-Fi",
		"https://upload.wikimedia.org/wikipedia/en/c/c1/The_Matrix_Poster.jpg",
		"A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers."},
	{9, "Goodfellas", "1990", 8.7, "Biography",
		"https://upload.wikimedia.org/wikipedia/en/7/7b/Goodfellas.jpg",
		"The story of Henry Hill and his life in the mob, covering his relationship with his wife and his partners in crime."},
	{10, "Seven Samurai", "1954", 8.6, "Action",
		"https://upload.wikimedia.org/wikipedia/commons/b/b5/Seven_Samurai_poster.jpg",
		"A poor village under attack by bandits recruits seven unemployed samurai to help them defend themselves."},
	{11, "Se7en", "1995", 8.6, "Crime",
		"https://upload.wikimedia.org/wikipedia/en/6/68/Seven_%28movie%29_poster.jpg",
		"Two detectives, a rookie and a veteran, hunt a serial killer who uses the seven deadly sins as his motives."},
	{12, "City of God", "2002", 8.6, "Crime",
		"https://upload.wikimedia.org/wikipedia/en/1/10/City_of_God_film_poster.jpg",
		"In the slums of Rio, two kids' paths diverge as one struggles to become a photographer and the other a kingpin."},
	{13, "Interstellar", "2014", 8.6, "Sci-Fi",
		"https://upload.wikimedia.org/wikipedia/en/b/bc/Interstellar_film_poster.jpg",
		"A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival."},
	{14, "Spirited Away", "2001", 8.6, "Animation",
		"https://upload.wikimedia.org/wikipedia/en/d/db/Spirited_Away_Japanese_poster.png",
		"During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches and spirits."},
	{15, "Parasite", "2019", 8.5, "Thriller",
		"https://upload.wikimedia.org/wikipedia/en/5/53/Parasite_%282019_film%29.png",
		"Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan."},
	{16, "The Green Mile", "1999", 8.6, "Fantasy",
		"https://upload.wikimedia.org/wikipedia/en/e/e2/The_Green_Mile_%28movie_poster%29.jpg",
		"The lives of guards on Death Row are affected by one of their charges, a man accused of a crime who has a mysterious gift."},
	{17, "Gladiator", "2000", 8.5, "Action",
		"https://upload.wikimedia.org/wikipedia/en/f/fb/Gladiator_%282000_film_poster%29.png",
		"A former Roman General sets out to exact vengeance against the corrupt emperor who murdered his family and sent him into slavery."},
	{18, "The Lion King", "1994", 8.5, "Animation",
		"https://upload.wikimedia.org/wikipedia/en/3/3d/The_Lion_King_poster.jpg",
		"Lion prince Simba and his father are targeted by his bitter uncle, who wants to ascend the throne himself."},
	{19, "The Prestige", "2006", 8.5, "Mystery",
		"https://upload.wikimedia.org/wikipedia/en/d/d2/Prestige_poster.jpg",
		"After a tragic accident, two stage magicians engage in a battle to create the ultimate illusion while sacrificing everything they have."},
	{20, "Whiplash", "2014", 8.5, "Music",
		"https://upload.wikimedia.org/wikipedia/en/0/01/Whiplash_poster.jpg",
		"A promising young drummer enrolls at a cut-throat music conservatory where his dreams of greatness are mentored by a ruthless instructor."},
	{21, "The Departed", "2006", 8.5, "Crime",
		"https://upload.wikimedia.org/wikipedia/en/5/50/Departed2.jpg",
		"An undercover cop and a mole in the police attempt to identify each other while infiltrating an Irish gang in Boston."},
}

// Fallback returns the curated dataset served when no loader data has ever
// been available. Each call returns a new slice with the same contents.
func Fallback() []Movie {
	movies := make([]Movie, len(fallbackEntries))
	for i, e := range fallbackEntries {
		m := Movie{
			ID:        e.id,
			Title:     e.title,
			Genres:    []string{e.genre},
			Rating:    e.rating,
			PosterURL: e.poster,
			Plot:      e.plot,
		}
		m.SetReleaseDate(e.year)
		movies[i] = m
	}
	return movies
}
