package consts

// Keyword spellings emitted by the formatter. Multi-word entries are emitted as a
// single unit so casing is applied to the whole phrase at once.
const (
	KeywordAll          = "ALL"
	KeywordAnd          = "AND"
	KeywordAs           = "AS"
	KeywordAtTimeZone   = "AT TIME ZONE"
	KeywordBetween      = "BETWEEN"
	KeywordCase         = "CASE"
	KeywordCast         = "CAST"
	KeywordCollate      = "COLLATE"
	KeywordConvert      = "CONVERT"
	KeywordCrossApply   = "CROSS APPLY"
	KeywordCrossJoin    = "CROSS JOIN"
	KeywordDefault      = "DEFAULT"
	KeywordDistinct     = "DISTINCT"
	KeywordDistinctFrom = "DISTINCT FROM"
	KeywordElse         = "ELSE"
	KeywordEnd          = "END"
	KeywordEscape       = "ESCAPE"
	KeywordExcept       = "EXCEPT"
	KeywordExists       = "EXISTS"
	KeywordFetchNext    = "FETCH NEXT"
	KeywordFrom         = "FROM"
	KeywordFullJoin     = "FULL OUTER JOIN"
	KeywordGroupBy      = "GROUP BY"
	KeywordHaving       = "HAVING"
	KeywordIn           = "IN"
	KeywordInnerJoin    = "INNER JOIN"
	KeywordIntersect    = "INTERSECT"
	KeywordInto         = "INTO"
	KeywordIs           = "IS"
	KeywordLeftJoin     = "LEFT OUTER JOIN"
	KeywordLike         = "LIKE"
	KeywordMax          = "MAX"
	KeywordNot          = "NOT"
	KeywordNull         = "NULL"
	KeywordOffset       = "OFFSET"
	KeywordOn           = "ON"
	KeywordOr           = "OR"
	KeywordOrderBy      = "ORDER BY"
	KeywordOuterApply   = "OUTER APPLY"
	KeywordPercent      = "PERCENT"
	KeywordRightJoin    = "RIGHT OUTER JOIN"
	KeywordRows         = "ROWS"
	KeywordRowsOnly     = "ROWS ONLY"
	KeywordSelect       = "SELECT"
	KeywordThen         = "THEN"
	KeywordTop          = "TOP"
	KeywordTryCast      = "TRY_CAST"
	KeywordTryConvert   = "TRY_CONVERT"
	KeywordUnion        = "UNION"
	KeywordWhen         = "WHEN"
	KeywordWhere        = "WHERE"
	KeywordWith         = "WITH"
	KeywordWithTies     = "WITH TIES"
)

// BuiltinTypes holds the SQL Server system data type names. Data types found here
// are rendered as keywords, anything else is treated as a user defined type name.
var BuiltinTypes = map[string]struct{}{
	"BIGINT": {}, "BINARY": {}, "BIT": {}, "CHAR": {}, "CURSOR": {}, "DATE": {},
	"DATETIME": {}, "DATETIME2": {}, "DATETIMEOFFSET": {}, "DECIMAL": {}, "FLOAT": {},
	"GEOGRAPHY": {}, "GEOMETRY": {}, "HIERARCHYID": {}, "IMAGE": {}, "INT": {},
	"MONEY": {}, "NCHAR": {}, "NTEXT": {}, "NUMERIC": {}, "NVARCHAR": {}, "REAL": {},
	"ROWVERSION": {}, "SMALLDATETIME": {}, "SMALLINT": {}, "SMALLMONEY": {},
	"SQL_VARIANT": {}, "SYSNAME": {}, "TABLE": {}, "TEXT": {}, "TIME": {},
	"TIMESTAMP": {}, "TINYINT": {}, "UNIQUEIDENTIFIER": {}, "VARBINARY": {},
	"VARCHAR": {}, "XML": {},
}

// BuiltinFunctions holds the SQL Server system function names. Calls to these
// are cased like keywords, any other single part name is a user defined function
// and follows the identifier style.
var BuiltinFunctions = map[string]struct{}{
	// Aggregates
	"APPROX_COUNT_DISTINCT": {}, "AVG": {}, "CHECKSUM_AGG": {}, "COUNT": {}, "COUNT_BIG": {},
	"GROUPING": {}, "GROUPING_ID": {}, "MAX": {}, "MIN": {}, "STDEV": {}, "STDEVP": {},
	"STRING_AGG": {}, "SUM": {}, "VAR": {}, "VARP": {},

	// Ranking and analytic
	"CUME_DIST": {}, "DENSE_RANK": {}, "FIRST_VALUE": {}, "LAG": {}, "LAST_VALUE": {},
	"LEAD": {}, "NTILE": {}, "PERCENT_RANK": {}, "PERCENTILE_CONT": {}, "PERCENTILE_DISC": {},
	"RANK": {}, "ROW_NUMBER": {},

	// Strings
	"ASCII": {}, "CHAR": {}, "CHARINDEX": {}, "CONCAT": {}, "CONCAT_WS": {}, "DIFFERENCE": {},
	"FORMAT": {}, "LEFT": {}, "LEN": {}, "LOWER": {}, "LTRIM": {}, "NCHAR": {}, "PATINDEX": {},
	"QUOTENAME": {}, "REPLACE": {}, "REPLICATE": {}, "REVERSE": {}, "RIGHT": {}, "RTRIM": {},
	"SOUNDEX": {}, "SPACE": {}, "STR": {}, "STRING_ESCAPE": {}, "STRING_SPLIT": {}, "STUFF": {},
	"SUBSTRING": {}, "TRANSLATE": {}, "TRIM": {}, "UNICODE": {}, "UPPER": {},

	// Dates
	"DATEADD": {}, "DATEDIFF": {}, "DATEDIFF_BIG": {}, "DATEFROMPARTS": {}, "DATENAME": {},
	"DATEPART": {}, "DATETIME2FROMPARTS": {}, "DATETIMEFROMPARTS": {}, "DATETRUNC": {},
	"DAY": {}, "EOMONTH": {}, "GETDATE": {}, "GETUTCDATE": {}, "ISDATE": {}, "MONTH": {},
	"SWITCHOFFSET": {}, "SYSDATETIME": {}, "SYSDATETIMEOFFSET": {}, "SYSUTCDATETIME": {},
	"TODATETIMEOFFSET": {}, "YEAR": {},

	// Math
	"ABS": {}, "ACOS": {}, "ASIN": {}, "ATAN": {}, "ATN2": {}, "CEILING": {}, "COS": {},
	"COT": {}, "DEGREES": {}, "EXP": {}, "FLOOR": {}, "LOG": {}, "LOG10": {}, "PI": {},
	"POWER": {}, "RADIANS": {}, "RAND": {}, "ROUND": {}, "SIGN": {}, "SIN": {}, "SQRT": {},
	"SQUARE": {}, "TAN": {},

	// Logical, conversion and system
	"CHECKSUM": {}, "CHOOSE": {}, "COALESCE": {}, "COLUMNPROPERTY": {}, "DB_ID": {},
	"DB_NAME": {}, "ERROR_MESSAGE": {}, "ERROR_NUMBER": {}, "HASHBYTES": {}, "IDENT_CURRENT": {},
	"IIF": {}, "ISJSON": {}, "ISNULL": {}, "ISNUMERIC": {}, "JSON_MODIFY": {}, "JSON_QUERY": {},
	"JSON_VALUE": {}, "NEWID": {}, "NEWSEQUENTIALID": {}, "NULLIF": {}, "OBJECT_ID": {},
	"OBJECT_NAME": {}, "OPENJSON": {}, "PARSE": {}, "SCHEMA_NAME": {}, "SCOPE_IDENTITY": {},
	"SUSER_SNAME": {}, "TRY_CONVERT": {}, "TRY_PARSE": {}, "USER_NAME": {},
}
