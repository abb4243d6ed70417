package service

import (
	"math"
	"strconv"
)

// Aggregate 评分聚合，每次读取时由评分记录现算
type Aggregate struct {
	Average *float64
	Count   int
}

// ComputeAggregate 没有评分时 Average 为 nil
func ComputeAggregate(values []int) Aggregate {
	if len(values) == 0 {
		return Aggregate{}
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := float64(sum) / float64(len(values))
	return Aggregate{Average: &avg, Count: len(values)}
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize 1024 进制，保留两位小数并去掉末尾的 0
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	for n := bytes; n >= 1024 && i < len(fileSizeUnits)-1; n /= 1024 {
		i++
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + fileSizeUnits[i]
}
