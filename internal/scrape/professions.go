package scrape

// Profession pairs a Wikidata occupation QID with a human-readable
// label used only for logging. The catalog deliberately spans many
// fields so the pool is not wall-to-wall actors; a few entries repeat
// QIDs where Wikidata's occupation tree overlaps, which is harmless
// because results are deduplicated by person.
type Profession struct {
	ID    string
	Label string
}

// Professions is the scrape batch list. Each entry becomes two queries
// (deceased and living).
var Professions = []Profession{
	// Acting & entertainment
	{"Q33999", "actor"},
	{"Q10800557", "film actor"},
	{"Q2405480", "voice actor"},
	{"Q245068", "comedian"},
	{"Q15981151", "television presenter"},
	{"Q947873", "television presenter"},
	{"Q17125263", "youtuber"},
	{"Q5716684", "stunt performer"},
	{"Q2259451", "magician"},
	{"Q15214752", "talent show contestant"},

	// Music
	{"Q177220", "singer"},
	{"Q639669", "musician"},
	{"Q183945", "record producer"},
	{"Q486748", "pianist"},
	{"Q855091", "guitarist"},
	{"Q384391", "drummer"},
	{"Q36834", "composer"},
	{"Q753110", "rapper"},
	{"Q130857", "DJ"},
	{"Q158852", "conductor"},
	{"Q2865819", "opera singer"},
	{"Q1259917", "violinist"},
	{"Q12800682", "saxophonist"},
	{"Q806349", "bassist"},
	{"Q386854", "trumpeter"},

	// Ball sports
	{"Q937857", "association football player"},
	{"Q3665646", "basketball player"},
	{"Q10871364", "tennis player"},
	{"Q12299841", "cricketer"},
	{"Q10833314", "baseball player"},
	{"Q15117302", "volleyball player"},
	{"Q18515558", "rugby player"},
	{"Q19204627", "American football player"},
	{"Q4009406", "ice hockey player"},
	{"Q13141064", "golfer"},
	{"Q6665249", "badminton player"},
	{"Q13381863", "table tennis player"},
	{"Q11774891", "handball player"},

	// Combat and mind sports
	{"Q11338576", "boxer"},
	{"Q13474373", "mixed martial artist"},
	{"Q10873124", "chess player"},
	{"Q14089670", "judoka"},
	{"Q10843263", "fencer"},
	{"Q13381753", "wrestler"},

	// Racing and speed
	{"Q378622", "racing driver"},
	{"Q2309784", "cyclist"},
	{"Q10843402", "swimmer"},
	{"Q15924516", "figure skater"},
	{"Q4270517", "speed skater"},
	{"Q13382519", "alpine skier"},
	{"Q13382981", "gymnast"},
	{"Q10873338", "diver"},

	// Athletics
	{"Q2066131", "athlete"},
	{"Q11513119", "sprinter"},
	{"Q11513337", "marathon runner"},
	{"Q14128148", "high jumper"},
	{"Q14629765", "long jumper"},
	{"Q14915786", "pole vaulter"},
	{"Q14915787", "shot putter"},

	// Film & TV craft
	{"Q2526255", "film director"},
	{"Q3282637", "film producer"},
	{"Q28389", "screenwriter"},
	{"Q3455803", "director"},
	{"Q222344", "cinematographer"},
	{"Q2722764", "television director"},

	// Writing & literature
	{"Q36180", "writer"},
	{"Q482980", "author"},
	{"Q1930187", "journalist"},
	{"Q49757", "poet"},
	{"Q214917", "playwright"},
	{"Q4853732", "children's writer"},
	{"Q6625963", "novelist"},
	{"Q4164507", "comics artist"},

	// Visual arts
	{"Q33231", "photographer"},
	{"Q1028181", "painter"},
	{"Q1281618", "sculptor"},
	{"Q42973", "architect"},
	{"Q627325", "graphic designer"},
	{"Q644687", "illustrator"},
	{"Q3391743", "interior designer"},
	{"Q1114448", "cartoonist"},

	// Business & politics
	{"Q82955", "politician"},
	{"Q131524", "entrepreneur"},
	{"Q484876", "chief executive officer"},
	{"Q806798", "banker"},
	{"Q43845", "businessperson"},
	{"Q16533", "judge"},
	{"Q40348", "lawyer"},

	// Science & academia
	{"Q901", "scientist"},
	{"Q11063", "astronaut"},
	{"Q169470", "physicist"},
	{"Q593644", "chemist"},
	{"Q864503", "biologist"},
	{"Q170790", "mathematician"},
	{"Q15976092", "neuroscientist"},
	{"Q81096", "engineer"},
	{"Q1622272", "university teacher"},
	{"Q205375", "inventor"},

	// Medicine
	{"Q39631", "physician"},
	{"Q774306", "surgeon"},
	{"Q2374149", "psychiatrist"},
	{"Q2640827", "psychologist"},

	// Royalty & military
	{"Q116", "monarch"},
	{"Q2478141", "princess"},
	{"Q47064", "military personnel"},
	{"Q189290", "military officer"},
	{"Q10669499", "naval officer"},

	// Religion
	{"Q432386", "religious leader"},
	{"Q250867", "Catholic priest"},
	{"Q42603", "priest"},

	// Fashion & lifestyle
	{"Q4610556", "model"},
	{"Q3501317", "fashion designer"},
	{"Q3387717", "chef"},
	{"Q2095549", "bartender"},
	{"Q13582652", "sommelier"},
	{"Q15855449", "podcaster"},

	// Exploration & adventure
	{"Q11900058", "explorer"},
	{"Q2125610", "mountaineer"},
	{"Q955464", "pilot"},
	{"Q2516866", "sailor"},

	// Social & activism
	{"Q15253558", "activist"},
	{"Q327055", "socialite"},
}
