package contact

import (
	"regexp"
	"strings"
)

// regionCities maps an administrative region to its known cities. Order
// matters: when the same city name appears under two regions, the later
// entry wins in the flattened lookup.
type regionCities struct {
	Region string
	Cities []string
}

var gazetteer = []regionCities{
	{"Karnataka", []string{"Bangalore", "Bengaluru", "Mysore", "Mysuru", "Hubli", "Hubballi", "Dharwad", "Hospet",
		"Mangalore", "Mangaluru", "Belgaum", "Belagavi", "Davanagere", "Davangere",
		"Bellary", "Ballari", "Gulbarga", "Kalaburagi", "Bijapur", "Vijayapura", "Shimoga", "Shivamogga",
		"Tumkur", "Tumakuru", "Raichur", "Bidar", "Hassan", "Udupi", "Chitradurga", "Bagalkot", "Gadag", "Koppal"}},

	{"Maharashtra", []string{"Mumbai", "Pune", "Nagpur", "Thane", "Nashik", "Aurangabad", "Solapur",
		"Kolhapur", "Amravati", "Navi Mumbai", "Sangli", "Satara", "Ratnagiri", "Akola",
		"Ahmednagar", "Jalgaon", "Dhule", "Nanded", "Latur", "Chandrapur", "Parbhani", "Yavatmal",
		"Buldhana", "Jalna", "Beed", "Osmanabad", "Hingoli", "Washim", "Gadchiroli", "Wardha"}},

	{"Tamil Nadu", []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Trichy", "Salem",
		"Tirunelveli", "Tiruppur", "Erode", "Vellore", "Thanjavur", "Dindigul", "Kanchipuram",
		"Cuddalore", "Thoothukudi", "Tuticorin", "Karur", "Namakkal", "Virudhunagar", "Krishnagiri",
		"Tiruvannamalai", "Nagapattinam", "Theni", "Perambalur", "Ariyalur", "Sivaganga", "Ramanathapuram"}},

	{"Kerala", []string{"Thiruvananthapuram", "Trivandrum", "Kochi", "Cochin", "Kozhikode", "Calicut",
		"Thrissur", "Trichur", "Kollam", "Quilon", "Palakkad", "Palghat", "Kannur", "Cannanore",
		"Alappuzha", "Alleppey", "Malappuram", "Pathanamthitta", "Kottayam", "Idukki", "Kasaragod", "Wayanad"}},

	{"Andhra Pradesh", []string{"Visakhapatnam", "Vizag", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Nandyal",
		"Rajahmundry", "Tirupati", "Eluru", "Ongole", "Anantapur", "Kakinada",
		"Kadapa", "Cuddapah", "Chittoor", "Srikakulam", "Vizianagaram", "Prakasam", "Parvathipuram Manyam"}},

	{"Telangana", []string{"Hyderabad", "Secunderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam",
		"Ramagundam", "Mahbubnagar", "Nalgonda", "Adilabad", "Suryapet",
		"Siddipet", "Medak", "Sangareddy", "Kamareddy", "Vikarabad", "Jagitial", "Peddapalli",
		"Jangaon", "Bhadradri Kothagudem", "Nagarkurnool", "Wanaparthy", "Mahabubabad", "Mancherial"}},

	{"Delhi", []string{"Delhi", "New Delhi", "South Delhi", "North Delhi", "East Delhi", "West Delhi",
		"Central Delhi", "North West Delhi", "South West Delhi", "North East Delhi", "Shahdara", "South East Delhi"}},

	{"Gujarat", []string{"Ahmedabad", "Surat", "Vadodara", "Baroda", "Rajkot", "Bhavnagar", "Jamnagar",
		"Gandhinagar", "Junagadh", "Gandhidham", "Anand", "Navsari", "Morbi", "Nadiad",
		"Kutch", "Mehsana", "Bharuch", "Valsad", "Porbandar", "Patan", "Amreli", "Dahod",
		"Sabarkantha", "Surendranagar", "Banaskantha", "Tapi", "Kheda", "Botad"}},

	{"Uttar Pradesh", []string{"Lucknow", "Kanpur", "Agra", "Varanasi", "Kashi", "Prayagraj", "Allahabad", "Gorakhpur",
		"Ghaziabad", "Meerut", "Noida", "Bareilly", "Aligarh", "Moradabad", "Saharanpur",
		"Jhansi", "Mathura", "Ayodhya", "Faizabad", "Firozabad", "Muzaffarnagar", "Sultanpur",
		"Mirzapur", "Azamgarh", "Bijnor", "Sitapur", "Hardoi", "Jaunpur", "Rampur", "Unnao",
		"Rae Bareli", "Barabanki", "Etawah", "Bulandshahr", "Amroha", "Ghazipur"}},

	{"West Bengal", []string{"Kolkata", "Calcutta", "Howrah", "Durgapur", "Asansol", "Siliguri",
		"Bardhaman", "Burdwan", "Malda", "Kharagpur", "Haldia", "Darjeeling",
		"Jalpaiguri", "Cooch Behar", "Bankura", "Birbhum", "Purulia", "Nadia", "Hooghly",
		"North 24 Parganas", "South 24 Parganas", "Murshidabad", "Paschim Medinipur", "Purba Medinipur"}},

	{"Rajasthan", []string{"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner", "Ajmer", "Bhilwara",
		"Alwar", "Sikar", "Bharatpur", "Sri Ganganagar", "Pali", "Chittorgarh",
		"Nagaur", "Banswara", "Bundi", "Tonk", "Jhunjhunu", "Hanumangarh", "Dausa",
		"Jhalawar", "Dungarpur", "Sawai Madhopur", "Churu", "Dholpur", "Jalore", "Baran", "Pratapgarh"}},

	{"Punjab", []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Mohali",
		"SAS Nagar", "Hoshiarpur", "Pathankot", "Moga", "Firozpur", "Phagwara",
		"Gurdaspur", "Kapurthala", "Sangrur", "Fatehgarh Sahib", "Faridkot", "Muktsar",
		"Mansa", "Rupnagar", "Ropar", "Barnala", "Nawanshahr", "Tarn Taran", "Malerkotla"}},

	{"Haryana", []string{"Gurgaon", "Gurugram", "Faridabad", "Ambala", "Panipat", "Rohtak",
		"Hisar", "Karnal", "Sonipat", "Panchkula", "Yamunanagar", "Bhiwani",
		"Sirsa", "Kurukshetra", "Rewari", "Palwal", "Fatehabad", "Jhajjar", "Kaithal",
		"Jind", "Mahendragarh", "Nuh", "Mewat", "Charkhi Dadri"}},

	{"Madhya Pradesh", []string{"Indore", "Bhopal", "Jabalpur", "Gwalior", "Ujjain", "Sagar",
		"Ratlam", "Satna", "Rewa", "Dewas", "Khandwa", "Chhatarpur",
		"Vidisha", "Morena", "Chhindwara", "Guna", "Shivpuri", "Mandsaur",
		"Neemuch", "Dhar", "Khargone", "Hoshangabad", "Katni", "Bhind",
		"Betul", "Narsinghpur", "Damoh", "Shahdol", "Shajapur", "Burhanpur"}},

	{"Bihar", []string{"Patna", "Gaya", "Muzaffarpur", "Bhagalpur", "Darbhanga", "Purnia",
		"Arrah", "Begusarai", "Chhapra", "Katihar", "Munger", "Saharsa",
		"Bettiah", "Motihari", "Samastipur", "Sitamarhi", "Madhubani", "Hajipur",
		"Araria", "Kishanganj", "Madhepura", "Jehanabad", "Nawada", "Buxar", "Siwan",
		"Aurangabad", "Jamui", "Nalanda", "Supaul", "Banka", "Lakhisarai"}},

	{"Odisha", []string{"Bhubaneswar", "Cuttack", "Rourkela", "Berhampur", "Sambalpur",
		"Puri", "Balasore", "Bhadrak", "Baripada", "Jharsuguda", "Angul",
		"Balangir", "Bargarh", "Jeypore", "Kendrapara", "Koraput", "Sundargarh",
		"Rayagada", "Dhenkanal", "Paradip", "Jagatsinghpur", "Jajpur", "Kendujhar", "Keonjhar"}},

	{"Assam", []string{"Guwahati", "Dibrugarh", "Silchar", "Jorhat", "Tezpur", "Nagaon",
		"Tinsukia", "Karimganj", "Hailakandi", "Sivasagar", "Golaghat",
		"Diphu", "Dhubri", "Bongaigaon", "North Lakhimpur", "Mangaldoi", "Nalbari",
		"Barpeta", "Kokrajhar", "Goalpara", "Dhemaji", "Majuli", "Hamren", "Hojai"}},

	{"Jharkhand", []string{"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Hazaribagh",
		"Deoghar", "Giridih", "Ramgarh", "Dumka", "Chas", "Phusro",
		"Garhwa", "Godda", "Koderma", "Chaibasa", "Lohardaga", "Pakur",
		"Sahebganj", "Latehar", "Simdega", "Khunti", "Gumla", "Jamtara", "Chatra"}},

	{"Chhattisgarh", []string{"Raipur", "Bhilai", "Bilaspur", "Korba", "Durg",
		"Rajnandgaon", "Jagdalpur", "Ambikapur", "Mahasamund", "Dhamtari",
		"Raigarh", "Janjgir", "Kanker", "Bemetara", "Kondagaon", "Balod",
		"Sukma", "Balrampur", "Dantewada", "Baloda Bazar", "Bijapur", "Mungeli",
		"Surajpur", "Gariaband", "Narayanpur", "Kabirdham", "Kawardha"}},

	{"Uttarakhand", []string{"Dehradun", "Haridwar", "Roorkee", "Haldwani", "Rudrapur",
		"Kashipur", "Rishikesh", "Nainital", "Mussoorie", "Pithoragarh",
		"Almora", "Srinagar", "Kotdwar", "Tehri", "Champawat",
		"Uttarkashi", "Bageshwar", "Chamoli", "Rudraprayag"}},

	{"Himachal Pradesh", []string{"Shimla", "Dharamshala", "Mandi", "Solan", "Palampur",
		"Kullu", "Baddi", "Nahan", "Kangra", "Bilaspur", "Hamirpur",
		"Una", "Chamba", "Kinnaur", "Lahaul and Spiti", "Sirmaur", "Keylong"}},

	{"Goa", []string{"Panaji", "Panjim", "Margao", "Vasco da Gama", "Vasco", "Mapusa",
		"Ponda", "Bicholim", "Curchorem", "Cuncolim", "Canacona",
		"Pernem", "Quepem", "Sanguem", "Sanquelim", "Valpoi", "Calangute", "Candolim"}},

	{"Jammu and Kashmir", []string{"Srinagar", "Jammu", "Anantnag", "Baramulla", "Udhampur",
		"Kathua", "Sopore", "Kupwara", "Pulwama", "Poonch", "Rajouri",
		"Budgam", "Bandipore", "Ganderbal", "Kulgam", "Kishtwar", "Ramban",
		"Reasi", "Doda", "Samba", "Shopian"}},

	{"Ladakh", []string{"Leh", "Kargil", "Zanskar", "Nubra", "Drass", "Khalatse", "Alchi", "Diskit",
		"Hanle", "Nyoma", "Chushul", "Durbuk", "Pangong", "Khaltse", "Sankoo"}},

	{"Arunachal Pradesh", []string{"Itanagar", "Naharlagun", "Pasighat", "Tawang", "Ziro", "Bomdila", "Aalo",
		"Tezu", "Namsai", "Roing", "Changlang", "Khonsa", "Seppa", "Daporijo", "Yingkiong",
		"Anini", "Koloriang", "Hawai", "Longding"}},

	{"Manipur", []string{"Imphal", "Thoubal", "Kakching", "Ukhrul", "Chandel", "Churachandpur", "Senapati",
		"Bishnupur", "Tamenglong", "Jiribam", "Kangpokpi", "Tengnoupal", "Pherzawl", "Noney",
		"Kamjong"}},

	{"Meghalaya", []string{"Shillong", "Tura", "Jowai", "Nongstoin", "Williamnagar", "Baghmara", "Resubelpara",
		"Ampati", "Khliehriat", "Mawkyrwat", "Nongpoh", "Mairang", "Dadenggre"}},

	{"Mizoram", []string{"Aizawl", "Lunglei", "Saiha", "Champhai", "Kolasib", "Serchhip", "Mamit", "Lawngtlai",
		"Khawzawl", "Saitual", "Hnahthial"}},

	{"Nagaland", []string{"Kohima", "Dimapur", "Mokokchung", "Tuensang", "Wokha", "Zunheboto", "Mon", "Phek",
		"Kiphire", "Longleng", "Peren", "Noklak"}},

	{"Sikkim", []string{"Gangtok", "Namchi", "Jorethang", "Gyalshing", "Mangan", "Rangpo", "Singtam", "Ravangla",
		"Soreng", "Pakyong"}},

	{"Tripura", []string{"Agartala", "Udaipur", "Dharmanagar", "Kailasahar", "Belonia", "Ambassa", "Khowai",
		"Teliamura", "Sabroom", "Santirbazar", "Kamalpur", "Kumarghat"}},

	{"Andaman and Nicobar Islands", []string{"Port Blair", "Mayabunder", "Diglipur", "Rangat", "Little Andaman",
		"Car Nicobar", "Campbell Bay", "Havelock Island", "Neil Island", "Kamorta"}},

	{"Chandigarh", []string{"Chandigarh", "Mani Majra", "Attawa", "Daria", "Hallomajra", "Maloya", "Palsora", "Kajheri"}},

	{"Dadra and Nagar Haveli and Daman and Diu", []string{"Silvassa", "Daman", "Diu", "Naroli", "Vapi", "Amli",
		"Kachigam", "Moti Daman", "Nani Daman", "Dunetha"}},

	{"Lakshadweep", []string{"Kavaratti", "Agatti", "Amini", "Andrott", "Bangaram", "Bitra", "Chetlat", "Kadmat",
		"Kalpeni", "Kiltan", "Minicoy"}},

	{"Puducherry", []string{"Puducherry", "Pondicherry", "Karaikal", "Yanam", "Mahe", "Ozhukarai", "Villianur",
		"Ariyankuppam", "Bahour", "Mannadipet"}},
}

// cityEntry is one flattened gazetteer row: the display-cased city name, its
// region, and a compiled whole-word matcher over lowercased text.
type cityEntry struct {
	City    string
	Region  string
	matcher *regexp.Regexp
}

// cityIndex is the flattened city lookup, built once at init. When a city
// name appears under multiple regions the later region wins, mirroring the
// source table.
var cityIndex = buildCityIndex()

func buildCityIndex() []cityEntry {
	byKey := make(map[string]int)
	var entries []cityEntry
	for _, rc := range gazetteer {
		for _, city := range rc.Cities {
			key := strings.ToLower(city)
			entry := cityEntry{
				City:    city,
				Region:  rc.Region,
				matcher: regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`),
			}
			if i, ok := byKey[key]; ok {
				entries[i] = entry
				continue
			}
			byKey[key] = len(entries)
			entries = append(entries, entry)
		}
	}
	return entries
}

// matchLocation scans lines in document order and returns "City, Region" for
// the first line containing a known city. When a line contains several known
// cities the leftmost match wins; ties at the same offset go to the longer
// city name. Returns "" when no city matches.
func matchLocation(lines []string) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		best := -1
		bestLen := 0
		bestEntry := cityEntry{}
		for _, entry := range cityIndex {
			loc := entry.matcher.FindStringIndex(lower)
			if loc == nil {
				continue
			}
			if best == -1 || loc[0] < best || (loc[0] == best && len(entry.City) > bestLen) {
				best = loc[0]
				bestLen = len(entry.City)
				bestEntry = entry
			}
		}
		if best != -1 {
			return bestEntry.City + ", " + bestEntry.Region
		}
	}
	return ""
}
