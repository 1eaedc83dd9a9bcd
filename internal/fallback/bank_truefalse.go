package fallback

// statementTemplate is a hand-authored true/false item.
type statementTemplate struct {
	statement   string
	answer      bool
	explanation string
}

var loopStatements = []statementTemplate{
	{"A while loop checks the condition after executing the code block.", false, "A while loop checks the condition before executing the code block."},
	{"Infinite loops occur when the loop condition never becomes false.", true, "Infinite loops continue indefinitely because the termination condition is never met."},
	{"A for loop is used when the number of iterations is unknown.", false, "A for loop is typically used when the number of iterations is known beforehand."},
	{"The break statement terminates the entire loop immediately.", true, "The break statement exits the loop completely, regardless of the condition."},
	{"Nested loops cannot use the same loop variable name.", false, "Nested loops can use the same variable name if they are in different scopes."},
	{"A do-while loop executes at least once.", true, "The do-while loop executes the code block first, then checks the condition."},
	{"All programming languages support the same types of loops.", false, "Different programming languages support different types and variations of loops."},
	{"Loop unrolling is an optimization technique.", true, "Loop unrolling reduces overhead by executing multiple iterations in a single cycle."},
}

var pythonStatements = []statementTemplate{
	{"Python uses braces {} for code blocks.", false, "Python uses indentation to define code blocks, not braces."},
	{"Python lists are mutable.", true, "List elements can be modified after creation."},
	{"Python tuples can be modified after they are created.", false, "Tuples are immutable; a new tuple must be built to change the contents."},
	{"Python dictionaries map keys to values.", true, "A dictionary stores key-value pairs and looks values up by key."},
}

var javaStatements = []statementTemplate{
	{"Java is a compiled language.", true, "Java code is compiled to bytecode that runs on the JVM."},
	{"Java supports multiple inheritance.", false, "Java supports single inheritance of classes but multiple inheritance of interfaces."},
	{"The main method is the entry point of a Java application.", true, "The JVM starts execution from the public static void main method."},
	{"Java requires programmers to free memory manually.", false, "Java uses garbage collection to reclaim unused objects automatically."},
}

var arrayStatements = []statementTemplate{
	{"Array indices start at 1 in most programming languages.", false, "Most programming languages use zero-based indexing for arrays."},
	{"Arrays can be multidimensional.", true, "Arrays can have multiple dimensions (2D, 3D, etc.)."},
	{"Accessing an array element by index takes constant time.", true, "Elements are stored contiguously, so the address is computed directly from the index."},
	{"A static array can grow automatically when it is full.", false, "Static arrays have a fixed size; dynamic arrays or lists are needed to grow."},
}

var functionStatements = []statementTemplate{
	{"All functions must return a value.", false, "Functions can be void and not return any value."},
	{"Recursive functions call themselves.", true, "Recursion involves functions calling themselves to solve problems."},
	{"Function parameters receive the values passed by the caller.", true, "Arguments supplied at the call site are bound to the function parameters."},
	{"A function can only be called once per program.", false, "Functions exist to be reused and may be called any number of times."},
}

var objectStatements = []statementTemplate{
	{"Encapsulation hides implementation details.", true, "Encapsulation bundles data and methods while hiding internal details."},
	{"Inheritance allows code reuse.", true, "Inheritance enables new classes to adopt properties of existing classes."},
	{"An object is a blueprint from which classes are created.", false, "A class is the blueprint; an object is an instance of a class."},
	{"Polymorphism prevents subclasses from overriding methods.", false, "Polymorphism relies on subclasses overriding methods with their own behavior."},
}

var programmingStatements = []statementTemplate{
	{"Object-oriented programming supports inheritance.", true, "Inheritance is a fundamental principle of object-oriented programming."},
	{"All programming languages are compiled languages.", false, "Some languages are interpreted (like Python) while others are compiled (like C++)."},
	{"A variable can store multiple data types simultaneously.", false, "A variable typically stores one data type at a time in statically typed languages."},
	{"Functions help in code reusability.", true, "Functions allow code to be written once and reused multiple times."},
	{"Arrays can only store numeric values.", false, "Arrays can store various data types including strings, objects, and other arrays."},
}

var databaseStatements = []statementTemplate{
	{"A primary key can contain null values.", false, "Primary keys must have unique, non-null values."},
	{"SQL is used for querying relational databases.", true, "SQL (Structured Query Language) is designed for managing relational databases."},
	{"Normalization reduces data redundancy.", true, "Database normalization organizes data to minimize duplication."},
	{"NoSQL databases require fixed schemas.", false, "NoSQL databases typically have flexible, dynamic schemas."},
}

var networkStatements = []statementTemplate{
	{"TCP provides reliable data delivery.", true, "TCP ensures reliable, ordered delivery of data packets."},
	{"HTTP is a secure protocol by default.", false, "HTTP is not secure; HTTPS provides security through encryption."},
	{"DNS translates domain names to IP addresses.", true, "Domain Name System resolves human-readable names to IP addresses."},
	{"UDP guarantees that packets arrive in order.", false, "UDP is connectionless and makes no ordering or delivery guarantees."},
}

var webStatements = []statementTemplate{
	{"HTML is a programming language.", false, "HTML is a markup language, not a programming language."},
	{"CSS is used for styling web pages.", true, "CSS controls the presentation and layout of web content."},
	{"JavaScript can only run in web browsers.", false, "JavaScript can run on servers (Node.js) and other environments."},
	{"HTTPS encrypts traffic between the browser and the server.", true, "HTTPS wraps HTTP in TLS so the exchanged data is encrypted."},
}
