package syntax

// Ruby tree-sitter node types and field names used by the walker.
//
// Reference: https://github.com/tree-sitter/tree-sitter-ruby/blob/master/src/grammar.json
const (
	nodeProgram        = "program"
	nodeCall           = "call"
	nodeSuper          = "super"
	nodeYield          = "yield"
	nodeArgumentList   = "argument_list"
	nodeBodyStatement  = "body_statement"
	nodeClass          = "class"
	nodeModule         = "module"
	nodeSingletonClass = "singleton_class"
	nodeOperator       = "operator"
	nodeIdentifier     = "identifier"
	nodeConstant       = "constant"

	fieldReceiver  = "receiver"
	fieldMethod    = "method"
	fieldArguments = "arguments"
	fieldBlock     = "block"
)
