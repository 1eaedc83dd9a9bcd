package fallback

// blankTemplate is a hand-authored fill-in-the-blank item.
type blankTemplate struct {
	sentence  string
	blankWord string
	hint      string
}

var loopBlanks = []blankTemplate{
	{"A _____ is a control structure that repeats a block of code.", "loop", "Repetition structure"},
	{"The _____ loop checks the condition before executing the code.", "while", "Pre-test loop"},
	{"A _____ loop executes at least once before checking the condition.", "do-while", "Post-test loop"},
	{"A counter-based loop is commonly used when the number of _____ is known.", "iterations", "Repetition count"},
	{"The _____ statement terminates a loop immediately.", "break", "Exit loop statement"},
	{"The _____ statement skips the current iteration and moves to the next.", "continue", "Skip iteration statement"},
	{"A _____ loop never stops executing because its condition is always true.", "infinite", "Never-ending loop"},
	{"A _____ loop is a loop inside another loop.", "nested", "Loop within loop"},
	{"Loop _____ refers to the number of times a loop executes.", "iteration", "Single execution cycle"},
	{"The loop _____ determines when the loop should stop.", "condition", "Boolean expression"},
}

var pythonBlanks = []blankTemplate{
	{"_____ is a high-level interpreted programming language.", "Python", "Popular language"},
	{"Python uses _____ for code blocks instead of braces.", "indentation", "Code structure"},
	{"A Python _____ is an ordered collection of items.", "list", "Mutable sequence"},
	{"A Python _____ is an immutable sequence of values.", "tuple", "Fixed sequence"},
	{"A Python _____ stores key-value pairs.", "dictionary", "Associative array"},
}

var javaBlanks = []blankTemplate{
	{"_____ is an object-oriented programming language.", "Java", "Platform-independent"},
	{"The _____ method is the entry point of a Java program.", "main", "Starting method"},
	{"Java code is compiled into _____ that runs on JVM.", "bytecode", "Intermediate code"},
	{"The _____ keyword creates a new object in Java.", "new", "Object creation"},
	{"Java _____ group related classes together.", "packages", "Class organization"},
}

var arrayBlanks = []blankTemplate{
	{"An _____ is a collection of elements stored in contiguous memory.", "array", "Data structure"},
	{"Array _____ starts from 0 in most programming languages.", "indexing", "Element position"},
	{"A _____ array has rows and columns.", "two-dimensional", "Matrix structure"},
	{"The _____ of an array is the number of elements it contains.", "length", "Size property"},
	{"Array _____ adds an element to the end.", "push", "Insertion method"},
}

var functionBlanks = []blankTemplate{
	{"A _____ is a reusable block of code.", "function", "Code module"},
	{"Function _____ are values passed to a function.", "parameters", "Input values"},
	{"The _____ statement sends a value back from a function.", "return", "Output keyword"},
	{"A _____ function has no name.", "anonymous", "Nameless function"},
	{"Function _____ is calling a function within itself.", "recursion", "Self-calling"},
}

var objectBlanks = []blankTemplate{
	{"A _____ is a blueprint for creating objects.", "class", "Object template"},
	{"An _____ is an instance of a class.", "object", "Class instance"},
	{"Class _____ are variables that store object data.", "attributes", "Object properties"},
	{"Class _____ are functions defined inside a class.", "methods", "Object behaviors"},
	{"_____ allows a class to inherit from another class.", "Inheritance", "Code reuse principle"},
}

var programmingBlanks = []blankTemplate{
	{"A _____ is a named block of reusable code.", "function", "Code block"},
	{"An _____ is a step-by-step procedure to solve a problem.", "algorithm", "Problem-solving method"},
	{"A _____ stores data values during program execution.", "variable", "Data container"},
	{"The _____ data structure follows Last In First Out.", "stack", "LIFO structure"},
	{"A _____ is a blueprint for creating objects.", "class", "Object template"},
	{"Exception _____ manages runtime errors gracefully.", "handling", "Error management"},
	{"A _____ statement makes decisions in code.", "conditional", "Decision structure"},
	{"Code _____ makes programs easier to understand.", "documentation", "Explanatory text"},
	{"A _____ is a container that stores multiple values.", "array", "Collection structure"},
	{"Object _____ allows classes to inherit properties.", "inheritance", "OOP principle"},
}

var databaseBlanks = []blankTemplate{
	{"A _____ key uniquely identifies each table record.", "primary", "Unique identifier"},
	{"The _____ command retrieves data from tables.", "SELECT", "Query command"},
	{"A _____ establishes relationships between tables.", "foreign key", "Table link"},
	{"Database _____ organizes data efficiently.", "normalization", "Data organization"},
	{"A _____ is a saved SQL query result.", "view", "Virtual table"},
	{"The _____ clause filters query results.", "WHERE", "Filter condition"},
	{"A _____ ensures data consistency.", "transaction", "Atomic operation"},
	{"An _____ speeds up data retrieval.", "index", "Search optimizer"},
}

var networkBlanks = []blankTemplate{
	{"The _____ protocol ensures reliable transmission.", "TCP", "Connection-oriented protocol"},
	{"A _____ forwards packets between networks.", "router", "Network device"},
	{"An IP _____ identifies a device on a network.", "address", "Numeric device label"},
	{"A _____ blocks unauthorized network access.", "firewall", "Security system"},
	{"The _____ layer handles end-to-end communication.", "Transport", "OSI layer"},
	{"A _____ translates domain names to IPs.", "DNS", "Name system"},
}

var webBlanks = []blankTemplate{
	{"The _____ language structures web content.", "HTML", "Markup language"},
	{"_____ styles and designs web pages.", "CSS", "Style sheets"},
	{"_____ adds interactivity to websites.", "JavaScript", "Scripting language"},
	{"The _____ method sends form data.", "POST", "HTTP method"},
	{"A _____ framework simplifies front-end work.", "Bootstrap", "CSS framework"},
	{"Web _____ store data in browsers.", "cookies", "Browser storage"},
}
