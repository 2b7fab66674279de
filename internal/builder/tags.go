package builder

import "github.com/cwbudde/go-javalint/internal/ctree"

// Concrete-tree tags the builder dispatches on. These name the grammar
// productions spec.md §4.2 describes; the external parser that produced the
// tree is expected to use exactly these tags (or a host adapts its own
// parser's tags to these at the ctree.Node boundary).
const (
	tagCompilationUnit    ctree.Tag = "COMPILATION_UNIT"
	tagPackageDeclaration ctree.Tag = "PACKAGE_DECLARATION"
	tagImportDeclaration  ctree.Tag = "IMPORT_DECLARATION"
	tagTypeDeclaration    ctree.Tag = "TYPE_DECLARATION"
	tagQualifiedIdentifier ctree.Tag = "QUALIFIED_IDENTIFIER"
	tagQualifiedIdentifierList ctree.Tag = "QUALIFIED_IDENTIFIER_LIST"
	tagStatic             ctree.Tag = "static"

	tagModifiers  ctree.Tag = "MODIFIERS"
	tagClassDecl  ctree.Tag = "CLASS_DECLARATION"
	tagInterfaceDecl ctree.Tag = "INTERFACE_DECLARATION"
	tagEnumDecl   ctree.Tag = "ENUM_DECLARATION"
	tagAnnotationTypeDecl ctree.Tag = "ANNOTATION_TYPE_DECLARATION"
	tagExtends    ctree.Tag = "extends"
	tagImplements ctree.Tag = "implements"
	tagClassType  ctree.Tag = "CLASS_TYPE"
	tagClassTypeList ctree.Tag = "CLASS_TYPE_LIST"
	tagIdentifier ctree.Tag = "IDENTIFIER"
	tagClassBody  ctree.Tag = "CLASS_BODY"
	tagInterfaceBody ctree.Tag = "INTERFACE_BODY"

	tagEnumConstants     ctree.Tag = "ENUM_CONSTANTS"
	tagEnumConstant      ctree.Tag = "ENUM_CONSTANT"
	tagEnumBodyDeclarations ctree.Tag = "ENUM_BODY_DECLARATIONS"
	tagArguments          ctree.Tag = "ARGUMENTS"

	tagAnnotationElementDecl ctree.Tag = "ANNOTATION_TYPE_ELEMENT_DECLARATION"
	tagAnnotationMethodRest  ctree.Tag = "ANNOTATION_METHOD_REST"
	tagAnnotationTypeElementRest ctree.Tag = "ANNOTATION_TYPE_ELEMENT_REST"

	tagClassBodyDeclaration ctree.Tag = "CLASS_BODY_DECLARATION"
	tagMemberDecl           ctree.Tag = "MEMBER_DECL"
	tagFieldDeclaration     ctree.Tag = "FIELD_DECLARATION"
	tagClassInitDeclaration ctree.Tag = "CLASS_INIT_DECLARATION"

	tagGenericMethodOrCtorRest ctree.Tag = "GENERIC_METHOD_OR_CONSTRUCTOR_REST"
	tagMethodDeclaratorRest    ctree.Tag = "METHOD_DECLARATOR_REST"
	tagVoidMethodDeclaratorRest ctree.Tag = "VOID_METHOD_DECLARATOR_REST"
	tagConstructorDeclaratorRest ctree.Tag = "CONSTRUCTOR_DECLARATOR_REST"

	tagType           ctree.Tag = "TYPE"
	tagVoidKeyword    ctree.Tag = "void"
	tagFormalParameters ctree.Tag = "FORMAL_PARAMETERS"
	tagFormalParameter  ctree.Tag = "FORMAL_PARAMETER"
	tagVariableDeclaratorID ctree.Tag = "VARIABLE_DECLARATOR_ID"
	tagEllipsis       ctree.Tag = "..."
	tagMethodBody     ctree.Tag = "METHOD_BODY"
	tagBlock          ctree.Tag = "BLOCK"
	tagThrows         ctree.Tag = "throws"

	tagVariableDeclarators ctree.Tag = "VARIABLE_DECLARATORS"
	tagVariableDeclarator  ctree.Tag = "VARIABLE_DECLARATOR"
	tagDim                 ctree.Tag = "DIM"
	tagVariableInitializer ctree.Tag = "VARIABLE_INITIALIZER"
	tagArrayInitializer    ctree.Tag = "ARRAY_INITIALIZER"

	tagStatement           ctree.Tag = "STATEMENT"
	tagBlockStatements      ctree.Tag = "BLOCK_STATEMENTS"
	tagBlockStatement       ctree.Tag = "BLOCK_STATEMENT"
	tagLocalVariableDeclarationStatement ctree.Tag = "LOCAL_VARIABLE_DECLARATION_STATEMENT"

	tagIfStatement    ctree.Tag = "if"
	tagElseStatement  ctree.Tag = "else"
	tagAssertStatement ctree.Tag = "assert"
	tagSwitchStatement ctree.Tag = "switch"
	tagSwitchBlockStatementGroup ctree.Tag = "SWITCH_BLOCK_STATEMENT_GROUP"
	tagSwitchLabel    ctree.Tag = "SWITCH_LABEL"
	tagCaseKeyword    ctree.Tag = "case"
	tagDefaultKeyword ctree.Tag = "default"
	tagConstantExpression ctree.Tag = "CONSTANT_EXPRESSION"
	tagWhileStatement ctree.Tag = "while"
	tagDoStatement    ctree.Tag = "do"
	tagForStatement   ctree.Tag = "FOR_STATEMENT"
	tagForInit        ctree.Tag = "FOR_INIT"
	tagForUpdate      ctree.Tag = "FOR_UPDATE"
	tagStatementExpressionList ctree.Tag = "STATEMENT_EXPRESSION_LIST"
	tagBreakStatement ctree.Tag = "break"
	tagContinueStatement ctree.Tag = "continue"
	tagReturnStatement ctree.Tag = "return"
	tagThrowStatement ctree.Tag = "throw"
	tagSynchronizedStatement ctree.Tag = "synchronized"
	tagTryStatement   ctree.Tag = "try"
	tagTryWithResourcesStatement ctree.Tag = "TRY_WITH_RESOURCES_STATEMENT"
	tagResourceSpecification ctree.Tag = "RESOURCE_SPECIFICATION"
	tagCatchClause    ctree.Tag = "CATCH_CLAUSE"
	tagFinally        ctree.Tag = "FINALLY"
	tagLabel          ctree.Tag = "LABEL"
	tagColon          ctree.Tag = ":"

	tagExpression            ctree.Tag = "EXPRESSION"
	tagStatementExpression   ctree.Tag = "STATEMENT_EXPRESSION"
	tagParExpression         ctree.Tag = "PAR_EXPRESSION"
	tagPrimary               ctree.Tag = "PRIMARY"
	tagConditionalOrExpression ctree.Tag = "CONDITIONAL_OR_EXPRESSION"
	tagConditionalAndExpression ctree.Tag = "CONDITIONAL_AND_EXPRESSION"
	tagInclusiveOrExpression ctree.Tag = "INCLUSIVE_OR_EXPRESSION"
	tagExclusiveOrExpression ctree.Tag = "EXCLUSIVE_OR_EXPRESSION"
	tagAndExpression         ctree.Tag = "AND_EXPRESSION"
	tagEqualityExpression    ctree.Tag = "EQUALITY_EXPRESSION"
	tagRelationalExpression  ctree.Tag = "RELATIONAL_EXPRESSION"
	tagShiftExpression       ctree.Tag = "SHIFT_EXPRESSION"
	tagAdditiveExpression    ctree.Tag = "ADDITIVE_EXPRESSION"
	tagMultiplicativeExpression ctree.Tag = "MULTIPLICATIVE_EXPRESSION"
	tagOperand               ctree.Tag = "OPERAND"
	tagOperator              ctree.Tag = "OPERATOR"
	tagInstanceofKeyword     ctree.Tag = "instanceof"
	tagReferenceType         ctree.Tag = "REFERENCE_TYPE"
	tagConditionalExpression ctree.Tag = "CONDITIONAL_EXPRESSION"
	tagQuestion              ctree.Tag = "?"
	tagAssignmentExpression  ctree.Tag = "ASSIGNMENT_EXPRESSION"
	tagAssignmentOperator    ctree.Tag = "ASSIGNMENT_OPERATOR"
	tagUnaryExpression       ctree.Tag = "UNARY_EXPRESSION"
	tagPrefixOp              ctree.Tag = "PREFIX_OP"
	tagPostfixOp             ctree.Tag = "POSTFIX_OP"
	tagSelector              ctree.Tag = "SELECTOR"
	tagLiteral               ctree.Tag = "LITERAL"
	tagThisKeyword           ctree.Tag = "this"
	tagSuperKeyword          ctree.Tag = "super"
	tagNewKeyword            ctree.Tag = "new"
	tagNullKeyword           ctree.Tag = "null"
	tagBasicType             ctree.Tag = "BASIC_TYPE"
	tagDotClass              ctree.Tag = "."
	tagClassKeyword          ctree.Tag = "class"

	tagIdentifierSuffix ctree.Tag = "IDENTIFIER_SUFFIX"
	tagDim2             ctree.Tag = "DIM_2" // '[' ']' suffix pair, structural marker
	tagDimExpr          ctree.Tag = "DIM_EXPR"
	tagExplicitGenericInvocation ctree.Tag = "EXPLICIT_GENERIC_INVOCATION"
	tagSuperSuffix      ctree.Tag = "SUPER_SUFFIX"
	tagInnerCreator     ctree.Tag = "INNER_CREATOR"

	tagCreator          ctree.Tag = "CREATOR"
	tagClassCreatorRest ctree.Tag = "CLASS_CREATOR_REST"
	tagArrayCreatorRest ctree.Tag = "ARRAY_CREATOR_REST"
)
