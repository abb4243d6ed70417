package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 笔记、评分等记录的主键
func GenID() uint64 {
	return uint64(node.Generate().Int64())
}
