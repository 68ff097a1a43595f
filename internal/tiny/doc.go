// Package tiny holds the tiny v2 wire table and its writer.
//
// Layout:
//
//	tiny	2	0	<ns1>	<ns2>	...
//	c	<name1>	<name2>	...
//		f	<desc>	<name1>	<name2>	...
//		m	<desc>	<name1>	<name2>	...
//
// Every row carries exactly one name per header namespace.
package tiny
