package dataset

// ── Word pools ──

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Dorothy", "Paul", "Kimberly", "Andrew", "Emily", "Joshua", "Donna",
	"Kenneth", "Michelle", "Kevin", "Carol", "Brian", "Amanda", "George", "Melissa",
	"Timothy", "Deborah", "Ronald", "Stephanie", "Edward", "Rebecca", "Jason", "Sharon",
	"Jeffrey", "Laura", "Ryan", "Cynthia", "Jacob", "Kathleen", "Gary", "Amy",
	"Nicholas", "Angela", "Eric", "Shirley", "Jonathan", "Anna", "Stephen", "Brenda",
	"Larry", "Pamela", "Justin", "Emma", "Scott", "Nicole", "Brandon", "Helen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
	"Mitchell", "Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "mail.com", "fastmail.com", "zoho.com", "aol.com",
	"example.com", "test.com", "company.org", "corp.net", "business.io",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"product", "service", "quality", "value", "design", "comfort", "style",
	"performance", "durable", "reliable", "everyday", "premium", "classic",
}

// Categories is the closed category set; products never use anything else.
var Categories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports", "Books",
}

// OrderStatuses and PaymentMethods mirror the fixed enumerations of the
// order lifecycle.
var OrderStatuses = []string{
	"Pending", "Processing", "Shipped", "Delivered", "Cancelled",
}

var PaymentMethods = []string{
	"Credit Card", "Debit Card", "PayPal", "Cash on Delivery",
}

var productAdjectives = []string{
	"Ergonomic", "Sleek", "Rustic", "Intelligent", "Gorgeous", "Incredible",
	"Fantastic", "Practical", "Handmade", "Refined", "Durable", "Lightweight",
	"Aerodynamic", "Enormous", "Mediocre", "Synergistic", "Heavy Duty", "Small",
}

var productNouns = []string{
	"Steel Chair", "Wooden Table", "Cotton Shirt", "Granite Lamp", "Rubber Keyboard",
	"Plastic Bottle", "Leather Wallet", "Wool Sweater", "Bronze Clock", "Silk Scarf",
	"Concrete Bench", "Copper Kettle", "Marble Bowl", "Paper Notebook", "Glass Vase",
	"Linen Jacket", "Iron Skillet", "Aluminum Bike", "Canvas Bag", "Bamboo Desk",
}

var supplierSuffixes = []string{
	"Inc", "LLC", "Group", "Ltd", "and Sons", "Brothers", "Co", "Industries",
	"Supply", "Trading",
}

var streetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Way",
}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol", "Clinton",
	"Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
	"Burlington", "Manchester", "Oxford", "Clayton", "Jackson", "Milton",
}

var states = []string{
	"Alabama", "Arizona", "California", "Colorado", "Florida", "Georgia",
	"Illinois", "Indiana", "Michigan", "Nevada", "New York", "Ohio",
	"Oregon", "Pennsylvania", "Texas", "Virginia", "Washington", "Wisconsin",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Australia", "Japan", "Brazil", "Mexico", "Netherlands",
}
