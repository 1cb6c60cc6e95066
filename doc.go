// Package tabula contains the core components of Tabula, an engine for
// tabular datasets with calculated columns. This root package defines the
// types which are employed during regular use of the engine, as well as in
// its extension, and is an excellent overview of Tabula's key concepts.
//
// A Table owns an ordered list of Columns plus raw input data. Calculated
// columns derive their per-row values from an arithmetic expression which
// references sibling columns by name, using the #ColumnName# delimiter
// syntax. Compile resolves every row of every column in dependency order,
// and read accessors render cell values and aggregation summaries.
package tabula
