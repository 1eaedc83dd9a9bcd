package fallback

// mcqTemplate is a hand-authored multiple-choice item. Options are listed
// in letter order a..d.
type mcqTemplate struct {
	question string
	options  [4]string
	correct  string
}

var programmingMCQ = []mcqTemplate{
	{
		question: "What is the primary purpose of a loop in programming?",
		options:  [4]string{"To execute a block of code repeatedly", "To declare variables", "To define functions", "To handle errors"},
		correct:  "a",
	},
	{
		question: "Which loop executes at least once regardless of the condition?",
		options:  [4]string{"for loop", "while loop", "do-while loop", "foreach loop"},
		correct:  "c",
	},
	{
		question: "What happens when a break statement is encountered in a loop?",
		options:  [4]string{"Loop continues to next iteration", "Loop terminates immediately", "Loop restarts from beginning", "Nothing happens"},
		correct:  "b",
	},
	{
		question: "In a for loop, which part is executed first?",
		options:  [4]string{"Initialization", "Condition", "Increment/Decrement", "Loop body"},
		correct:  "a",
	},
	{
		question: "What is an infinite loop?",
		options:  [4]string{"A loop that never starts", "A loop that executes exactly once", "A loop that never terminates", "A loop with no body"},
		correct:  "c",
	},
	{
		question: "Which term describes a finite sequence of well-defined steps that solves a problem?",
		options:  [4]string{"Variable", "Algorithm", "Compiler", "Syntax"},
		correct:  "b",
	},
}

var databaseMCQ = []mcqTemplate{
	{
		question: "In which of the following formats data is stored in the database management system?",
		options:  [4]string{"Image", "Text", "Table", "Graph"},
		correct:  "c",
	},
	{
		question: "What is a primary key in a database?",
		options:  [4]string{"A key used for encryption", "A unique identifier for each record", "A password for database access", "A duplicate key for backup"},
		correct:  "b",
	},
	{
		question: "Which SQL command is used to retrieve data from a database?",
		options:  [4]string{"GET", "FETCH", "SELECT", "RETRIEVE"},
		correct:  "c",
	},
	{
		question: "What does DBMS stand for?",
		options:  [4]string{"Data Base Management System", "Digital Base Management Software", "Data Binary Management System", "Database Monitoring Service"},
		correct:  "a",
	},
	{
		question: "Which of the following is NOT a type of database relationship?",
		options:  [4]string{"One-to-One", "One-to-Many", "Many-to-Many", "All-to-All"},
		correct:  "d",
	},
}

var networkMCQ = []mcqTemplate{
	{
		question: "What does IP stand for in networking?",
		options:  [4]string{"Internet Provider", "Internet Protocol", "Internal Process", "Interconnected Port"},
		correct:  "b",
	},
	{
		question: "Which layer of the OSI model handles data transmission?",
		options:  [4]string{"Application Layer", "Transport Layer", "Physical Layer", "Session Layer"},
		correct:  "c",
	},
	{
		question: "What is the purpose of a router?",
		options:  [4]string{"To connect devices within a network", "To forward data between different networks", "To provide power to devices", "To store network data"},
		correct:  "b",
	},
	{
		question: "Which protocol guarantees ordered, reliable delivery of a byte stream?",
		options:  [4]string{"UDP", "TCP", "ICMP", "ARP"},
		correct:  "b",
	},
}

var webMCQ = []mcqTemplate{
	{
		question: "Which language defines the structure of a web page?",
		options:  [4]string{"HTML", "CSS", "SQL", "Python"},
		correct:  "a",
	},
	{
		question: "Which technology controls the visual presentation of web content?",
		options:  [4]string{"HTTP", "CSS", "DNS", "JSON"},
		correct:  "b",
	},
	{
		question: "Where does client-side JavaScript normally execute?",
		options:  [4]string{"On the database server", "Inside the web browser", "Inside the DNS resolver", "On the network switch"},
		correct:  "b",
	},
	{
		question: "Which HTTP method is typically used to submit form data?",
		options:  [4]string{"GET", "HEAD", "POST", "TRACE"},
		correct:  "c",
	},
	{
		question: "Which HTTP status code indicates that a resource was not found?",
		options:  [4]string{"200", "301", "500", "404"},
		correct:  "d",
	},
}

var dataStructureMCQ = []mcqTemplate{
	{
		question: "Which data structure follows the Last In, First Out principle?",
		options:  [4]string{"Queue", "Stack", "Linked list", "Hash table"},
		correct:  "b",
	},
	{
		question: "Which data structure follows the First In, First Out principle?",
		options:  [4]string{"Queue", "Stack", "Binary tree", "Heap"},
		correct:  "a",
	},
	{
		question: "What is the time complexity of accessing an array element by index?",
		options:  [4]string{"O(n)", "O(log n)", "O(1)", "O(n log n)"},
		correct:  "c",
	},
	{
		question: "Which operation removes the top element of a stack?",
		options:  [4]string{"Push", "Enqueue", "Peek", "Pop"},
		correct:  "d",
	},
	{
		question: "In most programming languages, array indexing starts at which number?",
		options:  [4]string{"Zero", "One", "Minus one", "Ten"},
		correct:  "a",
	},
}
