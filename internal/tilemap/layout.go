package tilemap

// DefaultLayout is the built-in 20x19 maze. The ghost pen spans rows 7-9 in
// the middle and opens sideways on row 8 and downward on row 10.
var DefaultLayout = []string{
	"####################",
	"#o.......##.......o#",
	"#.##.###.##.###.##.#",
	"#..................#",
	"#.##.#.######.#.##.#",
	"#....#...##...#....#",
	"####.### ## ###.####",
	"####.#        #.####",
	"#....  ##  ##  ....#",
	"####.#        #.####",
	"####.# ###### #.####",
	"#........##........#",
	"#.##.###.##.###.##.#",
	"#..#............#..#",
	"##.#.#.######.#.#.##",
	"#....#...##...#....#",
	"#.######.##.######.#",
	"#o................o#",
	"####################",
}
