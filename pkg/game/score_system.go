package game

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/decker502/invaders/pkg/config"
)

// NullScoreName 尚未输入名字时当前分数使用的占位名
const NullScoreName = "NULL"

// Score 一条分数记录
type Score struct {
	ID     int
	Points int
	Name   string
}

// ScoreSystem 管理当前局分数和历史分数表
//
// 分数表按分数从高到低排序，保存时截断到 MaxScoresSave 条，
// 以 "id,points,name;" 序列化后与固定密钥异或写入 ScoreStore。
type ScoreSystem struct {
	store   ScoreStore
	current Score
	scores  []Score
}

// NewScoreSystem 创建分数系统并加载已保存的分数表
//
// 参数：
//   - store: 持久化后端，为 nil 时仅保存在内存中
func NewScoreSystem(store ScoreStore) *ScoreSystem {
	if store == nil {
		store = &MemoryScoreStore{}
	}
	ss := &ScoreSystem{
		store:   store,
		current: newCurrentScore(),
	}
	ss.LoadScores()
	return ss
}

func newCurrentScore() Score {
	return Score{ID: 0, Points: 0, Name: NullScoreName}
}

// AddCurrentPoints 为当前局加分
func (ss *ScoreSystem) AddCurrentPoints(points int) {
	ss.current.Points += points
}

// AddCurrentName 设置当前局的名字
func (ss *ScoreSystem) AddCurrentName(name string) {
	ss.current.Name = name
}

// CurrentScore 返回当前局分数
func (ss *ScoreSystem) CurrentScore() Score {
	return ss.current
}

// HighestScore 返回历史最高分，没有记录时返回 0
func (ss *ScoreSystem) HighestScore() int {
	if len(ss.scores) == 0 {
		return 0
	}
	return ss.scores[0].Points
}

// Scores 返回分数表副本（从高到低）
func (ss *ScoreSystem) Scores() []Score {
	out := make([]Score, len(ss.scores))
	copy(out, ss.scores)
	return out
}

// ClearCurrentScore 将当前局记入分数表（分数大于 0 时）并重置当前局
func (ss *ScoreSystem) ClearCurrentScore() {
	if ss.current.Points > 0 {
		ss.scores = append(ss.scores, Score{
			ID:     len(ss.scores),
			Points: ss.current.Points,
			Name:   ss.current.Name,
		})
	}
	ss.sortScores()
	ss.current = newCurrentScore()
}

// DiscardCurrentScore 丢弃当前局，不记入分数表
// 中途退出或重新开始时使用
func (ss *ScoreSystem) DiscardCurrentScore() {
	ss.current = newCurrentScore()
}

// SaveScores 截断、重新编号并加密保存分数表
// 分数表为空时不写入任何内容
func (ss *ScoreSystem) SaveScores() error {
	if len(ss.scores) == 0 {
		return nil
	}

	ss.sortScores()
	if len(ss.scores) > config.MaxScoresSave {
		ss.scores = ss.scores[:config.MaxScoresSave]
	}
	for i := range ss.scores {
		ss.scores[i].ID = i
	}

	data := EncryptDecrypt([]byte(SerializeScores(ss.scores)), config.EncryptKey)
	if err := ss.store.Save(data); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}

	log.Printf("[ScoreSystem] Saved %d scores", len(ss.scores))
	return nil
}

// LoadScores 读取并解密分数表
// 数据缺失或损坏时分数表为空，只记录日志
func (ss *ScoreSystem) LoadScores() {
	ss.scores = nil

	data, err := ss.store.Load()
	if err != nil {
		log.Printf("[ScoreSystem] Warning: %v (starting with no scores)", err)
		return
	}
	if len(data) == 0 {
		return
	}

	scores, err := DeserializeScores(string(EncryptDecrypt(data, config.EncryptKey)))
	if err != nil {
		log.Printf("[ScoreSystem] Warning: score data is malformed: %v (starting with no scores)", err)
		return
	}

	ss.scores = scores
	ss.sortScores()
	log.Printf("[ScoreSystem] Loaded %d scores", len(ss.scores))
}

// sortScores 按分数从高到低稳定排序
func (ss *ScoreSystem) sortScores() {
	sort.SliceStable(ss.scores, func(i, j int) bool {
		return ss.scores[i].Points > ss.scores[j].Points
	})
}

// EncryptDecrypt 用 key 循环异或数据，加密与解密是同一操作
func EncryptDecrypt(data []byte, key string) []byte {
	out := make([]byte, len(data))
	if len(key) == 0 {
		copy(out, data)
		return out
	}
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// SerializeScores 将分数表序列化为 "id,points,name;" 的拼接
func SerializeScores(scores []Score) string {
	var sb strings.Builder
	for _, s := range scores {
		sb.WriteString(strconv.Itoa(s.ID))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(s.Points))
		sb.WriteByte(',')
		sb.WriteString(s.Name)
		sb.WriteByte(';')
	}
	return sb.String()
}

// DeserializeScores 解析 SerializeScores 的输出
func DeserializeScores(data string) ([]Score, error) {
	var scores []Score
	for i, segment := range strings.Split(data, ";") {
		if segment == "" {
			continue
		}

		parts := strings.Split(segment, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("record %d: expected 3 fields, got %d", i, len(parts))
		}

		id, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid id: %w", i, err)
		}
		points, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid points: %w", i, err)
		}

		scores = append(scores, Score{ID: id, Points: points, Name: parts[2]})
	}
	return scores, nil
}
