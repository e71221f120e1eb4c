// scoredump 解密并打印分数文件
//
// 使用方法:
//
//	go run ./cmd/scoredump [-file data/scores.dat] [-format table|yaml|raw]
//
// table 按名次打印，yaml 输出结构化记录，raw 输出解密后的原始文本。
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"gopkg.in/yaml.v3"
)

// scoreRecord yaml 输出的一条记录
type scoreRecord struct {
	Rank   int    `yaml:"rank"`
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Points int    `yaml:"points"`
}

func main() {
	path := flag.String("file", config.ScoreFilePath, "分数文件路径")
	format := flag.String("format", "table", "输出格式: table, yaml 或 raw")
	flag.Parse()

	data, err := game.NewFileScoreStore(*path).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取失败: %v\n", err)
		os.Exit(1)
	}

	if err := dump(os.Stdout, data, *format); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// dump 解密 data 并按 format 写出
func dump(w io.Writer, data []byte, format string) error {
	plain := string(game.EncryptDecrypt(data, config.EncryptKey))
	if format == "raw" {
		_, err := fmt.Fprintln(w, plain)
		return err
	}

	scores, err := game.DeserializeScores(plain)
	if err != nil {
		return fmt.Errorf("分数数据损坏: %w", err)
	}

	switch format {
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RANK\tNAME\tPOINTS\tID")
		for i, s := range scores {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", i+1, s.Name, s.Points, s.ID)
		}
		return tw.Flush()

	case "yaml":
		records := make([]scoreRecord, len(scores))
		for i, s := range scores {
			records[i] = scoreRecord{Rank: i + 1, ID: s.ID, Name: s.Name, Points: s.Points}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("未知输出格式: %s", format)
	}
}
